package meshing

import (
	"ebiten-caves/components"
)

// nodeArena holds every control and midpoint node of a build. Nodes are
// addressed by integer handles:
//
//	control (x, y)              -> y*w + x
//	horizontal edge (x,y)-(x+1,y) -> hBase + y*(w-1) + x
//	vertical edge (x,y)-(x,y+1)   -> vBase + y*w + x
//
// vertexOf maps a handle to its mesh vertex index, -1 until first use.
type nodeArena struct {
	width, height int
	hBase, vBase  int

	positions []components.Vec2
	vertexOf  []int
}

func newNodeArena(grid *components.DensityGrid, cellSize float64, origin components.Vec2) *nodeArena {
	w, h := grid.Width, grid.Height
	a := &nodeArena{
		width:  w,
		height: h,
		hBase:  w * h,
		vBase:  w*h + (w-1)*h,
	}
	total := a.vBase + w*(h-1)
	a.positions = make([]components.Vec2, total)
	a.vertexOf = make([]int, total)
	for i := range a.vertexOf {
		a.vertexOf[i] = -1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a.positions[a.control(x, y)] = components.Vec2{
				X: origin.X + float64(x)*cellSize,
				Y: origin.Y + float64(y)*cellSize,
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			a.positions[a.horizontal(x, y)] = components.Lerp(
				a.positions[a.control(x, y)],
				a.positions[a.control(x+1, y)],
				midpointWeight(grid.Cells[y][x], grid.Cells[y][x+1]),
			)
		}
	}

	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			a.positions[a.vertical(x, y)] = components.Lerp(
				a.positions[a.control(x, y)],
				a.positions[a.control(x, y+1)],
				midpointWeight(grid.Cells[y][x], grid.Cells[y+1][x]),
			)
		}
	}

	return a
}

func (a *nodeArena) control(x, y int) int {
	return y*a.width + x
}

func (a *nodeArena) horizontal(x, y int) int {
	return a.hBase + y*(a.width-1) + x
}

func (a *nodeArena) vertical(x, y int) int {
	return a.vBase + y*a.width + x
}

// cellNodes returns the handles of a cell's corners and midpoints, in
// slot order
func (a *nodeArena) cellNodes(cx, cy int) [slotCount]int {
	return [slotCount]int{
		slotTopLeft:      a.control(cx, cy+1),
		slotTopRight:     a.control(cx+1, cy+1),
		slotBottomRight:  a.control(cx+1, cy),
		slotBottomLeft:   a.control(cx, cy),
		slotCentreTop:    a.horizontal(cx, cy+1),
		slotCentreRight:  a.vertical(cx+1, cy),
		slotCentreBottom: a.horizontal(cx, cy),
		slotCentreLeft:   a.vertical(cx, cy),
	}
}

// midpointWeight returns the interpolation parameter of the 0.5 iso level
// between two densities. Equal densities snap to the second endpoint.
func midpointWeight(d1, d2 uint8) float64 {
	f1 := float64(d1) / 255.0
	f2 := float64(d2) / 255.0
	if f1 == f2 {
		return 1.0
	}
	return (0.5 - f1) / (f2 - f1)
}

// variantCode packs the solid corners of a cell into 4 bits:
// top-left=8, top-right=4, bottom-right=2, bottom-left=1
func variantCode(grid *components.DensityGrid, cx, cy int) uint8 {
	var code uint8
	if components.IsSolid(grid.Cells[cy+1][cx]) {
		code |= 8
	}
	if components.IsSolid(grid.Cells[cy+1][cx+1]) {
		code |= 4
	}
	if components.IsSolid(grid.Cells[cy][cx+1]) {
		code |= 2
	}
	if components.IsSolid(grid.Cells[cy][cx]) {
		code |= 1
	}
	return code
}
