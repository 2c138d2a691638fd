package meshing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func TestTraversalsVisitEveryCellOnce(t *testing.T) {
	for _, traversal := range []Traversal{TraverseRows, TraverseColumns, TraverseSpiral} {
		for w := 1; w <= 7; w++ {
			for h := 1; h <= 7; h++ {
				t.Run(fmt.Sprintf("%s/%dx%d", traversal, w, h), func(t *testing.T) {
					steps := traversalOrder(traversal, w, h)
					require.Len(t, steps, w*h)

					visited := mapset.New[[2]int]()
					for _, s := range steps {
						require.True(t, s.X >= 0 && s.X < w && s.Y >= 0 && s.Y < h, "step %+v out of range", s)
						key := [2]int{s.X, s.Y}
						require.False(t, visited.Has(key), "cell %v visited twice", key)
						visited.Put(key)
						assert.Contains(t, []int{-1, 1}, s.DX)
						assert.Contains(t, []int{-1, 1}, s.DY)
					}
					assert.Equal(t, w*h, visited.Size())
				})
			}
		}
	}
}

func TestSpiralStartsAtOriginAndTurnsLeft(t *testing.T) {
	steps := spiralOrder(3, 3)
	var cells [][2]int
	for _, s := range steps {
		cells = append(cells, [2]int{s.X, s.Y})
	}
	assert.Equal(t, [][2]int{
		{0, 0}, {1, 0}, {2, 0},
		{2, 1}, {2, 2},
		{1, 2}, {0, 2},
		{0, 1},
		{1, 1},
	}, cells)

	// growth points along the walk and into the spiral
	assert.Equal(t, cellStep{X: 0, Y: 0, DX: 1, DY: 1}, steps[0])
	assert.Equal(t, cellStep{X: 2, Y: 1, DX: -1, DY: 1, Vertical: true}, steps[3])
	assert.Equal(t, cellStep{X: 1, Y: 2, DX: -1, DY: -1}, steps[5])
}

func TestParseTraversal(t *testing.T) {
	for _, traversal := range []Traversal{TraverseRows, TraverseColumns, TraverseSpiral} {
		parsed, err := ParseTraversal(traversal.String())
		require.NoError(t, err)
		assert.Equal(t, traversal, parsed)
	}
	_, err := ParseTraversal("diagonal")
	assert.Error(t, err)
	assert.Equal(t, TraverseRows, TraverseSpiral.Next())
}
