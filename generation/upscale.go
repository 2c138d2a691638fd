package generation

import (
	"math"

	"ebiten-caves/components"
)

// gaussianKernel is a 3x3 blur, row by row
var gaussianKernel = [3][3]float64{
	{0.0778, 0.1233, 0.0778},
	{0.1233, 0.1953, 0.1233},
	{0.0778, 0.1233, 0.0778},
}

// Upscale doubles the resolution of a grid. Every output cell samples the
// input cell it falls in, blurred with its neighbours, so each 2x2 block
// of the output holds one value. Samples beyond the border use the
// nearest edge cell.
func Upscale(grid *components.DensityGrid) *components.DensityGrid {
	out := &components.DensityGrid{
		Width:  grid.Width * 2,
		Height: grid.Height * 2,
		Cells:  make([][]uint8, grid.Height*2),
	}

	kernelSum := 0.0
	for _, row := range gaussianKernel {
		for _, w := range row {
			kernelSum += w
		}
	}

	for oy := 0; oy < out.Height; oy++ {
		out.Cells[oy] = make([]uint8, out.Width)
		for ox := 0; ox < out.Width; ox++ {
			cx, cy := ox/2, oy/2
			total := 0.0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					x := clampInt(cx+kx, 0, grid.Width-1)
					y := clampInt(cy+ky, 0, grid.Height-1)
					total += gaussianKernel[ky+1][kx+1] * float64(grid.Cells[y][x])
				}
			}
			out.Cells[oy][ox] = toDensity(total / kernelSum)
		}
	}
	return out
}

func toDensity(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return components.DensityEmpty
	}
	if v > 255 {
		return components.DensitySolid
	}
	return uint8(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
