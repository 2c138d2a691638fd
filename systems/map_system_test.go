package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"ebiten-caves/components"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
)

type failingSource struct{}

func (failingSource) GetDensity(int, int, bool) (*components.DensityGrid, error) {
	return nil, errors.New("disk on fire")
}

// flatFloorGrid is 6x4 with the lower two rows solid
func flatFloorGrid(t *testing.T) *components.DensityGrid {
	t.Helper()
	grid, err := components.NewDensityGrid(6, 4)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < grid.Width; x++ {
			grid.Set(x, y, components.DensitySolid)
		}
	}
	return grid
}

type MapSystemSuite struct {
	suite.Suite
	events   *ecs.EventManager
	received []MapRefreshedEvent
	ms       *MapSystem
}

func (s *MapSystemSuite) SetupTest() {
	s.events = ecs.NewEventManager()
	s.received = nil
	s.events.Subscribe(EventMapRefreshed, func(e ecs.Event) {
		s.received = append(s.received, e.(MapRefreshedEvent))
	})

	opts := DefaultMapOptions()
	opts.ExtendRim = false
	ms, err := NewMapSystem(&generation.StaticDensitySource{Grid: flatFloorGrid(s.T())}, opts, s.events, nil)
	s.Require().NoError(err)
	s.ms = ms
}

func (s *MapSystemSuite) TestRefreshReadsSizeFromGrid() {
	require := require.New(s.T())
	require.NoError(s.ms.Refresh(0, 0, true))

	require.Equal(6, s.ms.Grid().Width)
	require.InDelta(25.0, s.ms.CellSize(), 1e-9)
	require.NotNil(s.ms.Mesh())

	require.Len(s.received, 1)
	require.Equal(4, s.received[0].Height)
	require.True(s.received[0].Regenerated)
	require.Equal(s.ms.Mesh().TriangleCount(), s.received[0].Triangles)
}

func (s *MapSystemSuite) TestGridWorldRoundTrip() {
	require := require.New(s.T())
	require.NoError(s.ms.Refresh(0, 0, false))

	origin := s.ms.GridToWorld(0, 0)
	require.InDelta(-62.5, origin.X, 1e-9)
	require.InDelta(-37.5, origin.Y, 1e-9)

	lo, hi := s.ms.Bounds()
	require.Equal(origin, lo)
	require.InDelta(62.5, hi.X, 1e-9)
	require.InDelta(37.5, hi.Y, 1e-9)

	for _, g := range [][2]float64{{0, 0}, {2.5, 1.5}, {5, 3}, {-1, 7.25}} {
		gx, gy := s.ms.WorldToGrid(s.ms.GridToWorld(g[0], g[1]))
		require.InDelta(g[0], gx, 1e-9)
		require.InDelta(g[1], gy, 1e-9)
	}
}

func (s *MapSystemSuite) TestFloorSegmentsOnFlatFloor() {
	require := require.New(s.T())
	require.NoError(s.ms.Refresh(0, 0, false))

	segments := s.ms.FloorSegments(4)
	require.Len(segments, 1)
	floor := segments[0]
	require.Len(floor, 6)
	for i, p := range floor {
		require.InDelta(0.0, p.Y, 1e-9)
		require.InDelta(-62.5+float64(i)*25, p.X, 1e-9)
	}

	require.Empty(s.ms.FloorSegments(7))

	spawn, ok := s.ms.FindSpawnPoint(4)
	require.True(ok)
	require.InDelta(0.0, spawn.X, 1e-9)
	require.InDelta(0.0, spawn.Y, 1e-9)
}

func (s *MapSystemSuite) TestRebuildWithNewTraversal() {
	require := require.New(s.T())
	require.ErrorIs(s.ms.Rebuild(), ErrNotBuilt)
	require.NoError(s.ms.Refresh(0, 0, false))

	opts := s.ms.Options()
	opts.Traversal = opts.Traversal.Next()
	s.ms.SetOptions(opts)
	require.NoError(s.ms.Rebuild())

	require.Len(s.received, 2)
	require.False(s.received[1].Regenerated)
	require.Len(s.ms.FloorSegments(4), 1)
}

func TestMapSystemSuite(t *testing.T) {
	suite.Run(t, new(MapSystemSuite))
}

func TestNewMapSystemRequiresSource(t *testing.T) {
	_, err := NewMapSystem(nil, DefaultMapOptions(), nil, nil)
	assert.ErrorIs(t, err, ErrNoDensitySource)
}

func TestRefreshPropagatesSourceErrors(t *testing.T) {
	ms, err := NewMapSystem(failingSource{}, DefaultMapOptions(), nil, nil)
	require.NoError(t, err)
	err = ms.Refresh(10, 10, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Nil(t, ms.Mesh())

	bad := &components.DensityGrid{Width: 1, Height: 1, Cells: [][]uint8{{0}}}
	ms, err = NewMapSystem(&generation.StaticDensitySource{Grid: bad}, DefaultMapOptions(), nil, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, ms.Refresh(1, 1, false), components.ErrGridTooSmall)
}

func TestNoSpawnOnOpenGrid(t *testing.T) {
	grid, err := components.NewDensityGrid(8, 8)
	require.NoError(t, err)
	ms, err := NewMapSystem(&generation.StaticDensitySource{Grid: grid}, DefaultMapOptions(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, ms.Refresh(8, 8, false))

	assert.Empty(t, ms.FloorSegments(2))
	_, ok := ms.FindSpawnPoint(2)
	assert.False(t, ok)
}

func TestFindNearestOpenSpace(t *testing.T) {
	grid, err := components.NewFilledDensityGrid(5, 5, components.DensitySolid)
	require.NoError(t, err)
	grid.Set(1, 0, 100) // open but not navigable
	grid.Set(3, 0, 20)
	grid.Set(4, 4, components.DensityEmpty)

	ms, err := NewMapSystem(&generation.StaticDensitySource{Grid: grid}, DefaultMapOptions(), nil, nil)
	require.NoError(t, err)

	_, ok := ms.FindNearestOpenSpace(0, 0)
	assert.False(t, ok, "nothing is found before the first refresh")

	require.NoError(t, ms.Refresh(5, 5, false))

	tile, ok := ms.FindNearestOpenSpace(0, 0)
	require.True(t, ok)
	assert.Equal(t, components.Tile{X: 3, Y: 0}, tile)

	tile, ok = ms.FindNearestOpenSpace(9, 9)
	require.True(t, ok)
	assert.Equal(t, components.Tile{X: 4, Y: 4}, tile)

	grid.Fill(components.DensitySolid)
	_, ok = ms.FindNearestOpenSpace(2, 2)
	assert.False(t, ok)
}

func TestMapSystemWithCaveGenerator(t *testing.T) {
	cfg := generation.DefaultCaveConfig()
	cfg.UseRandomSeed = false
	cfg.Seed = 77
	cfg.Upscale = true
	gen := generation.NewCaveGenerator(cfg, nil)

	var logged []string
	ms, err := NewMapSystem(gen, DefaultMapOptions(), nil, func(msg string) { logged = append(logged, msg) })
	require.NoError(t, err)
	require.NoError(t, ms.Refresh(40, 25, false))

	assert.Equal(t, 50, ms.Grid().Height)
	assert.InDelta(t, 2.0, ms.CellSize(), 1e-9)
	assert.Positive(t, ms.Mesh().TriangleCount())
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Meshed 80x50")

	first := ms.Grid()
	require.NoError(t, ms.Refresh(40, 25, false))
	assert.Same(t, first, ms.Grid())
}
