package meshing

import (
	"fmt"
	"strings"
)

// Traversal selects the order in which cells are visited. It only changes
// how solid cells are grouped into blocks.
type Traversal int

const (
	TraverseRows Traversal = iota
	TraverseColumns
	TraverseSpiral
)

func (t Traversal) String() string {
	switch t {
	case TraverseRows:
		return "rows"
	case TraverseColumns:
		return "columns"
	case TraverseSpiral:
		return "spiral"
	default:
		return fmt.Sprintf("Traversal(%d)", int(t))
	}
}

// ParseTraversal converts a name such as "rows" into a Traversal
func ParseTraversal(name string) (Traversal, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rows", "row":
		return TraverseRows, nil
	case "columns", "column", "cols":
		return TraverseColumns, nil
	case "spiral":
		return TraverseSpiral, nil
	}
	return TraverseRows, fmt.Errorf("unknown traversal %q", name)
}

// Next returns the following traversal, wrapping around
func (t Traversal) Next() Traversal {
	return (t + 1) % 3
}

// cellStep is one visit of the traversal. DX and DY are the directions a
// solid block may grow in; Vertical is set when the walk is heading
// along the y axis.
type cellStep struct {
	X, Y     int
	DX, DY   int
	Vertical bool
}

func traversalOrder(t Traversal, width, height int) []cellStep {
	switch t {
	case TraverseColumns:
		return columnOrder(width, height)
	case TraverseSpiral:
		return spiralOrder(width, height)
	default:
		return rowOrder(width, height)
	}
}

func rowOrder(width, height int) []cellStep {
	steps := make([]cellStep, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			steps = append(steps, cellStep{X: x, Y: y, DX: 1, DY: 1})
		}
	}
	return steps
}

func columnOrder(width, height int) []cellStep {
	steps := make([]cellStep, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			steps = append(steps, cellStep{X: x, Y: y, DX: 1, DY: 1, Vertical: true})
		}
	}
	return steps
}

// spiralOrder walks the outer ring from (0, 0) heading +x and turns left
// whenever the next cell would leave the bounds, shrinking them by the
// side just finished.
func spiralOrder(width, height int) []cellStep {
	total := width * height
	steps := make([]cellStep, 0, total)

	minX, minY, maxX, maxY := 0, 0, width-1, height-1
	x, y := 0, 0
	hx, hy := 1, 0

	for len(steps) < total {
		// left of the heading points into the spiral
		lx, ly := -hy, hx
		step := cellStep{X: x, Y: y, DX: hx, DY: ly, Vertical: hx == 0}
		if hx == 0 {
			step.DX, step.DY = lx, hy
		}
		steps = append(steps, step)

		nx, ny := x+hx, y+hy
		if nx < minX || nx > maxX || ny < minY || ny > maxY {
			switch {
			case hx == 1:
				minY++
			case hy == 1:
				maxX--
			case hx == -1:
				maxY--
			case hy == -1:
				minX++
			}
			hx, hy = -hy, hx
			nx, ny = x+hx, y+hy
		}
		x, y = nx, ny
	}

	return steps
}
