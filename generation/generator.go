package generation

import (
	"fmt"
	"math/rand"
	"time"

	"ebiten-caves/components"
)

// DensitySource produces density grids. The returned grid may not have
// the requested size; callers read the dimensions back from it.
type DensitySource interface {
	GetDensity(width, height int, reload bool) (*components.DensityGrid, error)
}

// CaveGenerator produces fully connected cave density grids
type CaveGenerator struct {
	config     CaveConfig
	seed       int64
	logMessage func(string) // Function for logging messages

	cached          *components.DensityGrid
	cachedW         int
	cachedH         int
	lastRoomCount   int
	lastPassageRuns int
}

// NewCaveGenerator creates a new cave generator
func NewCaveGenerator(config CaveConfig, logFunc func(string)) *CaveGenerator {
	return &CaveGenerator{
		config:     config,
		logMessage: logFunc,
	}
}

// SetSeed allows setting a specific seed for reproducible caves
func (g *CaveGenerator) SetSeed(seed int64) {
	g.config.Seed = seed
	g.config.UseRandomSeed = false
}

// Seed returns the seed of the most recent run
func (g *CaveGenerator) Seed() int64 {
	return g.seed
}

// Config returns the generator configuration
func (g *CaveGenerator) Config() CaveConfig {
	return g.config
}

// SetConfig replaces the configuration. The cached grid is dropped.
func (g *CaveGenerator) SetConfig(config CaveConfig) {
	g.config = config
	g.cached = nil
}

// GetDensity returns the cached grid unless reload is set or the requested
// size differs from the cached request
func (g *CaveGenerator) GetDensity(width, height int, reload bool) (*components.DensityGrid, error) {
	if !reload && g.cached != nil && g.cachedW == width && g.cachedH == height {
		return g.cached, nil
	}

	grid, err := g.Generate(width, height)
	if err != nil {
		return nil, err
	}
	g.cached = grid
	g.cachedW, g.cachedH = width, height
	return grid, nil
}

// Generate runs the whole pipeline once: fill, smooth, remove small
// regions, connect rooms, and optionally upscale
func (g *CaveGenerator) Generate(width, height int) (*components.DensityGrid, error) {
	cfg := g.config
	cfg.Width, cfg.Height = width, height
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g.seed = cfg.Seed
	if cfg.UseRandomSeed {
		g.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(g.seed))

	grid, err := components.NewDensityGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create cave grid: %w", err)
	}

	RandomFill(grid, rng, cfg.FillPercent)
	for i := 0; i < cfg.SmoothIterations; i++ {
		Smooth(grid, cfg.NeighbourHigh, cfg.NeighbourLow)
	}

	rooms := EliminateSmallRegions(grid, cfg.WallRegionThreshold, cfg.RoomRegionThreshold)
	sets := ConnectAllRooms(grid, rooms, cfg.PassageRadius)
	g.lastRoomCount = len(rooms)
	g.lastPassageRuns = sets.Connections()

	if cfg.Upscale {
		grid = Upscale(grid)
	}

	if g.logMessage != nil {
		g.logMessage(fmt.Sprintf("Generated a %dx%d cave (seed %d): %d rooms joined by %d passages",
			grid.Width, grid.Height, g.seed, len(rooms), sets.Connections()))
	}

	return grid, nil
}

// LastRun reports the room and passage counts of the most recent run
func (g *CaveGenerator) LastRun() (rooms, passages int) {
	return g.lastRoomCount, g.lastPassageRuns
}

// StaticDensitySource serves a fixed grid regardless of the requested size
type StaticDensitySource struct {
	Grid *components.DensityGrid
}

// GetDensity returns the stored grid
func (s *StaticDensitySource) GetDensity(width, height int, reload bool) (*components.DensityGrid, error) {
	if err := s.Grid.Validate(); err != nil {
		return nil, fmt.Errorf("static density source: %w", err)
	}
	return s.Grid, nil
}
