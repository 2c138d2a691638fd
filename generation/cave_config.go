package generation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every CaveConfig validation failure
var ErrInvalidConfig = errors.New("generation: invalid cave configuration")

// CaveConfig defines every tunable of a cave generation run
type CaveConfig struct {
	Width  int // Requested grid width in tiles
	Height int // Requested grid height in tiles

	FillPercent   int   // Chance (0-100) of an interior tile starting as wall
	Seed          int64 // Seed used when UseRandomSeed is false
	UseRandomSeed bool  // Derive the seed from the clock on every run

	SmoothIterations int // Cellular automaton passes
	NeighbourHigh    int // More wall neighbours than this turns a tile into wall
	NeighbourLow     int // Fewer wall neighbours than this turns a tile into floor

	WallRegionThreshold int // Wall regions smaller than this are removed
	RoomRegionThreshold int // Open regions smaller than this are filled in

	PassageRadius int  // Brush radius used when carving passages, at least 1
	Upscale       bool // Double the resolution after generation
}

// DefaultCaveConfig returns the standard cave settings
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Width:               128,
		Height:              72,
		FillPercent:         47,
		UseRandomSeed:       true,
		SmoothIterations:    5,
		NeighbourHigh:       4,
		NeighbourLow:        4,
		WallRegionThreshold: 50,
		RoomRegionThreshold: 50,
		PassageRadius:       1,
	}
}

// Validate checks the configuration before a run
func (c CaveConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: size %dx%d is below 2x2", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FillPercent < 0 || c.FillPercent > 100 {
		return fmt.Errorf("%w: fill percent %d outside 0-100", ErrInvalidConfig, c.FillPercent)
	}
	if c.SmoothIterations < 0 {
		return fmt.Errorf("%w: negative smoothing iterations", ErrInvalidConfig)
	}
	if c.NeighbourLow > c.NeighbourHigh+1 {
		return fmt.Errorf("%w: neighbour band %d..%d is inverted", ErrInvalidConfig, c.NeighbourLow, c.NeighbourHigh)
	}
	if c.WallRegionThreshold < 0 || c.RoomRegionThreshold < 0 {
		return fmt.Errorf("%w: negative region threshold", ErrInvalidConfig)
	}
	// a single-cell line only joins rooms diagonally
	if c.PassageRadius < 1 {
		return fmt.Errorf("%w: passage radius %d is below 1", ErrInvalidConfig, c.PassageRadius)
	}
	return nil
}
