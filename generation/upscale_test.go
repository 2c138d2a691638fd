package generation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-caves/components"
)

func TestUpscaleUniformGrids(t *testing.T) {
	for _, value := range []uint8{components.DensityEmpty, 90, components.DensitySolid} {
		grid, err := components.NewFilledDensityGrid(6, 4, value)
		require.NoError(t, err)

		out := Upscale(grid)
		require.Equal(t, 12, out.Width)
		require.Equal(t, 8, out.Height)
		require.NoError(t, out.Validate())

		expected, err := components.NewFilledDensityGrid(12, 8, value)
		require.NoError(t, err)
		assert.True(t, out.Equal(expected), "value %d", value)
	}
}

func TestUpscaleBlursAStep(t *testing.T) {
	grid := emptyGrid(t, 6, 3)
	for y := 0; y < grid.Height; y++ {
		for x := 3; x < grid.Width; x++ {
			grid.Set(x, y, components.DensitySolid)
		}
	}

	out := Upscale(grid)
	for y := 0; y < out.Height; y++ {
		assert.Equal(t, components.DensityEmpty, out.At(0, y))
		assert.Equal(t, components.DensitySolid, out.At(out.Width-1, y))
		for x := 1; x < out.Width; x++ {
			assert.GreaterOrEqual(t, out.At(x, y), out.At(x-1, y))
		}
		// cells next to the step are blended
		assert.Greater(t, out.At(5, y), components.DensityEmpty)
		assert.Less(t, out.At(6, y), components.DensitySolid)
	}
}

func TestUpscaleLeavesInputAlone(t *testing.T) {
	grid := emptyGrid(t, 4, 4)
	grid.Set(1, 2, components.DensitySolid)
	before := grid.Clone()

	Upscale(grid)
	assert.True(t, grid.Equal(before))
}

func TestUpscaleFillsTwoByTwoBlocks(t *testing.T) {
	grid := emptyGrid(t, 9, 7)
	RandomFill(grid, rand.New(rand.NewSource(3)), 50)

	out := Upscale(grid)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			v := out.At(2*x, 2*y)
			assert.Equal(t, v, out.At(2*x+1, 2*y), "block (%d,%d)", x, y)
			assert.Equal(t, v, out.At(2*x, 2*y+1), "block (%d,%d)", x, y)
			assert.Equal(t, v, out.At(2*x+1, 2*y+1), "block (%d,%d)", x, y)
		}
	}

	// a lone wall blurs into its neighbours without staying solid
	single := emptyGrid(t, 5, 5)
	single.Set(2, 2, components.DensitySolid)
	out = Upscale(single)
	assert.Equal(t, uint8(50), out.At(4, 4)) // 0.1953 * 255 / kernel sum
	assert.Equal(t, uint8(31), out.At(2, 4)) // edge weight
	assert.Equal(t, uint8(20), out.At(2, 2)) // corner weight
}
