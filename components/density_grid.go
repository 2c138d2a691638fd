package components

import (
	"errors"
	"fmt"
)

// Density values and thresholds
const (
	DensityEmpty uint8 = 0
	DensitySolid uint8 = 255

	// SolidThreshold is the lowest value treated as solid
	SolidThreshold = 127

	// NavigableThreshold is the value below which a cell is safely open
	NavigableThreshold = 70
)

// ErrGridTooSmall is returned when a grid has fewer than 2 cells on an axis.
var ErrGridTooSmall = errors.New("components: density grid must be at least 2x2")

// DensityGrid stores raw density values for a map
type DensityGrid struct {
	Width  int
	Height int
	Cells  [][]uint8 // indexed [y][x]
}

// NewDensityGrid creates an empty grid with the given dimensions
func NewDensityGrid(width, height int) (*DensityGrid, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, width, height)
	}

	g := &DensityGrid{
		Width:  width,
		Height: height,
		Cells:  make([][]uint8, height),
	}
	for y := 0; y < height; y++ {
		g.Cells[y] = make([]uint8, width)
	}
	return g, nil
}

// NewFilledDensityGrid creates a grid with every cell set to value
func NewFilledDensityGrid(width, height int, value uint8) (*DensityGrid, error) {
	g, err := NewDensityGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.Fill(value)
	return g, nil
}

// Validate checks the grid shape. Rows must match Width.
func (g *DensityGrid) Validate() error {
	if g == nil || g.Width < 2 || g.Height < 2 {
		return ErrGridTooSmall
	}
	if len(g.Cells) != g.Height {
		return fmt.Errorf("density grid has %d rows, want %d", len(g.Cells), g.Height)
	}
	for y, row := range g.Cells {
		if len(row) != g.Width {
			return fmt.Errorf("density grid row %d has %d cells, want %d", y, len(row), g.Width)
		}
	}
	return nil
}

// InBounds reports whether (x, y) is inside the grid
func (g *DensityGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the value at (x, y)
func (g *DensityGrid) At(x, y int) uint8 {
	return g.Cells[y][x]
}

// Set sets the value at (x, y). Out of range writes are ignored.
func (g *DensityGrid) Set(x, y int, value uint8) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = value
	}
}

// Fill sets every cell to value
func (g *DensityGrid) Fill(value uint8) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = value
		}
	}
}

// IsSolid returns true if the cell at (x, y) is solid.
// Out of bounds is considered solid.
func (g *DensityGrid) IsSolid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return IsSolid(g.Cells[y][x])
}

// IsNavigable returns true if the cell at (x, y) is open enough to stand in
func (g *DensityGrid) IsNavigable(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x] < NavigableThreshold
}

// Clone returns a deep copy of the grid
func (g *DensityGrid) Clone() *DensityGrid {
	c := &DensityGrid{
		Width:  g.Width,
		Height: g.Height,
		Cells:  make([][]uint8, g.Height),
	}
	for y := range g.Cells {
		c.Cells[y] = make([]uint8, len(g.Cells[y]))
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}

// Equal reports whether both grids have the same size and values
func (g *DensityGrid) Equal(other *DensityGrid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// IsSolid applies the solid threshold to a raw density value
func IsSolid(value uint8) bool {
	return value >= SolidThreshold
}

// Tile is an integer grid coordinate
type Tile struct {
	X, Y int
}
