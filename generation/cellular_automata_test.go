package generation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-caves/components"
)

func emptyGrid(t *testing.T, w, h int) *components.DensityGrid {
	t.Helper()
	grid, err := components.NewDensityGrid(w, h)
	require.NoError(t, err)
	return grid
}

func solidGrid(t *testing.T, w, h int) *components.DensityGrid {
	t.Helper()
	grid, err := components.NewFilledDensityGrid(w, h, components.DensitySolid)
	require.NoError(t, err)
	return grid
}

func TestRandomFillKeepsBorderSolid(t *testing.T) {
	grid := emptyGrid(t, 10, 8)
	RandomFill(grid, rand.New(rand.NewSource(1)), 0)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			border := x == 0 || y == 0 || x == grid.Width-1 || y == grid.Height-1
			assert.Equal(t, border, grid.IsSolid(x, y), "tile (%d,%d)", x, y)
		}
	}

	RandomFill(grid, rand.New(rand.NewSource(1)), 100)
	assert.True(t, grid.Equal(solidGrid(t, 10, 8)))
}

func TestSmoothThresholdBand(t *testing.T) {
	neighbours := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	cases := []struct {
		name   string
		walls  int
		centre uint8
		want   bool
	}{
		{"four walls keep floor", 4, components.DensityEmpty, false},
		{"four walls keep wall", 4, components.DensitySolid, true},
		{"five walls make wall", 5, components.DensityEmpty, true},
		{"three walls make floor", 3, components.DensitySolid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := emptyGrid(t, 3, 3)
			for _, n := range neighbours[:tc.walls] {
				grid.Set(n[0], n[1], components.DensitySolid)
			}
			grid.Set(1, 1, tc.centre)
			require.Equal(t, tc.walls, countAdjacentWalls(grid, 1, 1))

			Smooth(grid, 4, 4)
			assert.Equal(t, tc.want, grid.IsSolid(1, 1))
		})
	}
}

func TestCountAdjacentWallsCountsEdges(t *testing.T) {
	grid := emptyGrid(t, 4, 4)
	assert.Equal(t, 3, countAdjacentWalls(grid, 0, 1))
	assert.Equal(t, 5, countAdjacentWalls(grid, 0, 0))
	assert.Equal(t, 0, countAdjacentWalls(grid, 1, 1))
}

func TestSmoothReadsThePreviousGeneration(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := emptyGrid(t, 24, 16)
	RandomFill(grid, rng, 50)
	before := grid.Clone()

	Smooth(grid, 4, 4)

	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			walls := countAdjacentWalls(before, x, y)
			switch {
			case walls > 4:
				assert.True(t, grid.IsSolid(x, y))
			case walls < 4:
				assert.False(t, grid.IsSolid(x, y))
			default:
				assert.Equal(t, before.IsSolid(x, y), grid.IsSolid(x, y))
			}
		}
	}
}
