package generation

import (
	"ebiten-caves/components"
)

// CarvePassage clears a corridor between two tiles by stamping a filled
// circle of the given radius at every point of the line between them.
// Whatever was there before is overwritten.
func CarvePassage(grid *components.DensityGrid, from, to components.Tile, radius int) {
	for _, tile := range Line(from, to) {
		carveCircle(grid, tile, radius)
	}
}

// carveCircle empties every tile within radius of the centre
func carveCircle(grid *components.DensityGrid, centre components.Tile, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			grid.Set(centre.X+dx, centre.Y+dy, components.DensityEmpty)
		}
	}
}

// Line rasterizes the segment between two tiles, both ends included
func Line(from, to components.Tile) []components.Tile {
	dx, dy := to.X-from.X, to.Y-from.Y
	step, gradientStep := sign(dx), sign(dy)
	longest, shortest := abs(dx), abs(dy)

	inverted := longest < shortest
	if inverted {
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]components.Tile, 0, longest+1)
	x, y := from.X, from.Y
	accumulation := longest / 2
	for i := 0; i <= longest; i++ {
		line = append(line, components.Tile{X: x, Y: y})

		if inverted {
			y += step
		} else {
			x += step
		}
		accumulation += shortest
		if accumulation >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			accumulation -= longest
		}
	}
	return line
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
