package generation

import (
	"math/rand"

	"ebiten-caves/components"
)

// RandomFill seeds the grid with noise. Border tiles are always wall;
// interior tiles become wall with the given percentage chance.
func RandomFill(grid *components.DensityGrid, rng *rand.Rand, fillPercent int) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if x == 0 || x == grid.Width-1 || y == 0 || y == grid.Height-1 {
				grid.Cells[y][x] = components.DensitySolid
				continue
			}
			if rng.Intn(100) < fillPercent {
				grid.Cells[y][x] = components.DensitySolid
			} else {
				grid.Cells[y][x] = components.DensityEmpty
			}
		}
	}
}

// Smooth runs one cellular automaton pass over the interior. A tile with
// more than high wall neighbours becomes wall, fewer than low becomes
// floor, anything in between is left alone.
func Smooth(grid *components.DensityGrid, high, low int) {
	// Create a copy of the current state
	next := grid.Clone()

	for y := 1; y < grid.Height-1; y++ {
		for x := 1; x < grid.Width-1; x++ {
			walls := countAdjacentWalls(grid, x, y)
			if walls > high {
				next.Cells[y][x] = components.DensitySolid
			} else if walls < low {
				next.Cells[y][x] = components.DensityEmpty
			}
		}
	}

	for y := range grid.Cells {
		copy(grid.Cells[y], next.Cells[y])
	}
}

// countAdjacentWalls counts the wall tiles among the 8 neighbours of a
// position. Edges count as walls.
func countAdjacentWalls(grid *components.DensityGrid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if grid.IsSolid(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}
