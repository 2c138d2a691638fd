package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"ebiten-caves/components"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
	"ebiten-caves/meshing"
)

// Sentinel errors for the map system
var (
	ErrNoDensitySource = errors.New("systems: no density source configured")
	ErrNotBuilt        = errors.New("systems: map has not been built yet")
)

// MapOptions controls how the map system meshes a grid
type MapOptions struct {
	Traversal meshing.Traversal
	MaxAspect float64
	ExtendRim bool
}

// DefaultMapOptions returns the standard meshing settings
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Traversal: meshing.TraverseRows,
		MaxAspect: meshing.DefaultMaxAspect,
		ExtendRim: true,
	}
}

// MapSystem fetches density grids from a source, meshes them, and answers
// coordinate and floor queries about the current map
type MapSystem struct {
	source     generation.DensitySource
	opts       MapOptions
	events     *ecs.EventManager
	logMessage func(string)

	grid     *components.DensityGrid
	mesh     *components.Mesh
	cellSize float64
	origin   components.Vec2
}

// NewMapSystem creates a new map system. events and logFunc may be nil.
func NewMapSystem(source generation.DensitySource, opts MapOptions, events *ecs.EventManager, logFunc func(string)) (*MapSystem, error) {
	if source == nil {
		return nil, ErrNoDensitySource
	}
	return &MapSystem{
		source:     source,
		opts:       opts,
		events:     events,
		logMessage: logFunc,
	}, nil
}

// Refresh asks the source for a grid and rebuilds the mesh from it. The
// source may return a different size than requested; the real size is
// read back from the grid.
func (s *MapSystem) Refresh(width, height int, reload bool) error {
	grid, err := s.source.GetDensity(width, height, reload)
	if err != nil {
		return fmt.Errorf("failed to get density: %w", err)
	}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("failed to get density: %w", err)
	}

	s.grid = grid
	return s.rebuild(reload)
}

// Rebuild meshes the current grid again, e.g. after the options changed
func (s *MapSystem) Rebuild() error {
	if s.grid == nil {
		return ErrNotBuilt
	}
	return s.rebuild(false)
}

func (s *MapSystem) rebuild(regenerated bool) error {
	cellSize := meshing.WorldSpan / float64(s.grid.Height)
	origin := meshing.CenteredOrigin(s.grid.Width, s.grid.Height, cellSize)

	mesh, err := meshing.Build(s.grid, meshing.Options{
		CellSize:  cellSize,
		Origin:    origin,
		Traversal: s.opts.Traversal,
		MaxAspect: s.opts.MaxAspect,
		ExtendRim: s.opts.ExtendRim,
	})
	if err != nil {
		return err
	}

	s.mesh = mesh
	s.cellSize = cellSize
	s.origin = origin

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Meshed %dx%d grid (%s): %d triangles, %d outlines",
			s.grid.Width, s.grid.Height, s.opts.Traversal, mesh.TriangleCount(), len(mesh.Outlines)))
	}
	if s.events != nil {
		s.events.Emit(MapRefreshedEvent{
			Width:       s.grid.Width,
			Height:      s.grid.Height,
			CellSize:    cellSize,
			Triangles:   mesh.TriangleCount(),
			Outlines:    len(mesh.Outlines),
			Regenerated: regenerated,
		})
	}
	return nil
}

// Options returns the meshing options
func (s *MapSystem) Options() MapOptions {
	return s.opts
}

// SetOptions replaces the meshing options. Call Rebuild to apply them.
func (s *MapSystem) SetOptions(opts MapOptions) {
	s.opts = opts
}

// Grid returns the current density grid, or nil before the first refresh
func (s *MapSystem) Grid() *components.DensityGrid {
	return s.grid
}

// Mesh returns the current mesh, or nil before the first refresh
func (s *MapSystem) Mesh() *components.Mesh {
	return s.mesh
}

// CellSize returns the world size of one grid step for the current mesh
func (s *MapSystem) CellSize() float64 {
	return s.cellSize
}

// Bounds returns the world positions of the lowest and highest grid points
func (s *MapSystem) Bounds() (lo, hi components.Vec2) {
	if s.grid == nil {
		return components.Vec2{}, components.Vec2{}
	}
	return s.origin, s.GridToWorld(float64(s.grid.Width-1), float64(s.grid.Height-1))
}

// GridToWorld converts grid coordinates into world space
func (s *MapSystem) GridToWorld(gx, gy float64) components.Vec2 {
	return components.Vec2{
		X: s.origin.X + gx*s.cellSize,
		Y: s.origin.Y + gy*s.cellSize,
	}
}

// WorldToGrid converts a world position into fractional grid coordinates
func (s *MapSystem) WorldToGrid(p components.Vec2) (float64, float64) {
	if s.cellSize == 0 {
		return 0, 0
	}
	return (p.X - s.origin.X) / s.cellSize, (p.Y - s.origin.Y) / s.cellSize
}

// FloorSegments returns every run of at least minPoints consecutive outline
// points at the same height with increasing X. Outlines keep solid space
// on their right, so such a run has solid ground directly below it.
func (s *MapSystem) FloorSegments(minPoints int) [][]components.Vec2 {
	if s.mesh == nil {
		return nil
	}
	if minPoints < 2 {
		minPoints = 2
	}

	var segments [][]components.Vec2
	for _, outline := range s.mesh.Outlines {
		points := s.mesh.OutlinePoints(outline)
		segments = append(segments, floorRuns(points, outline.Closed(), minPoints, s.cellSize*1e-6)...)
	}
	return segments
}

func isFloorStep(a, b components.Vec2, eps float64) bool {
	return math.Abs(a.Y-b.Y) <= eps && b.X > a.X
}

// floorRuns splits one outline into floor runs. A closed outline is rotated
// to start after a non-floor step so no run is cut at the seam.
func floorRuns(points []components.Vec2, closed bool, minPoints int, eps float64) [][]components.Vec2 {
	seq := points
	if closed && len(points) > 2 {
		ring := points[:len(points)-1]
		n := len(ring)
		start := 0
		for i := 0; i < n; i++ {
			if !isFloorStep(ring[(i+n-1)%n], ring[i], eps) {
				start = i
				break
			}
		}
		seq = make([]components.Vec2, 0, n+1)
		for i := 0; i <= n; i++ {
			seq = append(seq, ring[(start+i)%n])
		}
	}
	if len(seq) == 0 {
		return nil
	}

	var runs [][]components.Vec2
	run := []components.Vec2{seq[0]}
	flush := func() {
		if len(run) >= minPoints {
			runs = append(runs, run)
		}
	}
	for i := 1; i < len(seq); i++ {
		if isFloorStep(seq[i-1], seq[i], eps) {
			run = append(run, seq[i])
			continue
		}
		flush()
		run = []components.Vec2{seq[i]}
	}
	flush()
	return runs
}

// FindSpawnPoint returns the middle of the widest floor segment
func (s *MapSystem) FindSpawnPoint(minPoints int) (components.Vec2, bool) {
	var best []components.Vec2
	bestWidth := -1.0
	for _, segment := range s.FloorSegments(minPoints) {
		width := segment[len(segment)-1].X - segment[0].X
		if width > bestWidth {
			best, bestWidth = segment, width
		}
	}
	if best == nil {
		return components.Vec2{}, false
	}

	first, last := best[0], best[len(best)-1]
	return components.Vec2{X: (first.X + last.X) / 2, Y: first.Y}, true
}

// FindNearestOpenSpace searches outward from (x, y) for the closest tile
// below the navigable threshold. Starting points outside the grid are
// clamped onto it.
func (s *MapSystem) FindNearestOpenSpace(x, y int) (components.Tile, bool) {
	if s.grid == nil {
		return components.Tile{}, false
	}
	start := components.Tile{
		X: min(max(x, 0), s.grid.Width-1),
		Y: min(max(y, 0), s.grid.Height-1),
	}

	seen := mapset.New[components.Tile]()
	pending := queue.New[components.Tile]()
	pending.Enqueue(start)
	seen.Put(start)

	for !pending.Empty() {
		tile := pending.Dequeue()
		if s.grid.IsNavigable(tile.X, tile.Y) {
			return tile, true
		}
		for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			next := components.Tile{X: tile.X + d[0], Y: tile.Y + d[1]}
			if !s.grid.InBounds(next.X, next.Y) || seen.Has(next) {
				continue
			}
			seen.Put(next)
			pending.Enqueue(next)
		}
	}
	return components.Tile{}, false
}
