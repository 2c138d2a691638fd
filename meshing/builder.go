// Package meshing turns a density grid into a triangle mesh using marching
// squares, merging fully solid cells into larger quads and tracing the
// boundary between solid and open space into outlines.
package meshing

import (
	"errors"
	"fmt"

	"ebiten-caves/components"
)

// Sentinel errors for mesh building
var (
	ErrInvalidCellSize = errors.New("meshing: cell size must be positive")
)

const (
	// DefaultMaxAspect bounds the width/height ratio of merged solid blocks
	DefaultMaxAspect = 4.0

	// WorldSpan is the world height a map is scaled to
	WorldSpan = 100.0

	// RimExtension is how many cell sizes rim vertices are pushed outward
	RimExtension = 50.0

	rimTolerance = 1e-3
)

// Options controls a mesh build
type Options struct {
	CellSize  float64
	Origin    components.Vec2 // world position of grid point (0, 0)
	Traversal Traversal
	MaxAspect float64
	ExtendRim bool
}

// DefaultOptions derives the cell size from the grid height and centers the
// grid on the world origin
func DefaultOptions(grid *components.DensityGrid) Options {
	cellSize := WorldSpan / float64(grid.Height)
	return Options{
		CellSize:  cellSize,
		Origin:    CenteredOrigin(grid.Width, grid.Height, cellSize),
		Traversal: TraverseRows,
		MaxAspect: DefaultMaxAspect,
		ExtendRim: true,
	}
}

// CenteredOrigin returns the grid origin that puts the map center at (0, 0)
func CenteredOrigin(width, height int, cellSize float64) components.Vec2 {
	return components.Vec2{
		X: -float64(width-1) * cellSize / 2,
		Y: -float64(height-1) * cellSize / 2,
	}
}

type builder struct {
	grid  *components.DensityGrid
	opts  Options
	nodes *nodeArena

	cellsW, cellsH int
	variants       []uint8
	merged         []bool

	vertices  []components.Vec2
	triangles []int
	edges     components.BoundaryEdgeMap
}

// Build triangulates the grid. All scratch state belongs to this call.
func Build(grid *components.DensityGrid, opts Options) (*components.Mesh, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build mesh: %w", err)
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("failed to build mesh: %w (got %g)", ErrInvalidCellSize, opts.CellSize)
	}
	if opts.MaxAspect < 1 {
		opts.MaxAspect = DefaultMaxAspect
	}

	b := newBuilder(grid, opts)
	for _, step := range traversalOrder(opts.Traversal, b.cellsW, b.cellsH) {
		b.visit(step)
	}

	outlines := TraceOutlines(len(b.vertices), b.edges)

	if opts.ExtendRim {
		extendRim(b.vertices, opts.Origin, components.Vec2{
			X: opts.Origin.X + float64(grid.Width-1)*opts.CellSize,
			Y: opts.Origin.Y + float64(grid.Height-1)*opts.CellSize,
		}, opts.CellSize)
	}

	return &components.Mesh{
		Vertices:  b.vertices,
		Triangles: b.triangles,
		Outlines:  outlines,
		CellSize:  opts.CellSize,
		Origin:    opts.Origin,
	}, nil
}

func newBuilder(grid *components.DensityGrid, opts Options) *builder {
	b := &builder{
		grid:   grid,
		opts:   opts,
		nodes:  newNodeArena(grid, opts.CellSize, opts.Origin),
		cellsW: grid.Width - 1,
		cellsH: grid.Height - 1,
		edges:  make(components.BoundaryEdgeMap),
	}
	b.variants = make([]uint8, b.cellsW*b.cellsH)
	b.merged = make([]bool, b.cellsW*b.cellsH)
	for cy := 0; cy < b.cellsH; cy++ {
		for cx := 0; cx < b.cellsW; cx++ {
			b.variants[cy*b.cellsW+cx] = variantCode(grid, cx, cy)
		}
	}
	return b
}

func (b *builder) visit(step cellStep) {
	i := b.cellIndex(step.X, step.Y)
	if b.merged[i] {
		return
	}
	switch b.variants[i] {
	case variantEmpty:
		return
	case variantSolid:
		b.mergeSolidBlock(step)
	default:
		b.triangulateCell(step.X, step.Y)
	}
}

func (b *builder) cellIndex(cx, cy int) int {
	return cy*b.cellsW + cx
}

// vertexFor returns the vertex index of a node, creating it on first use
func (b *builder) vertexFor(handle int) int {
	if idx := b.nodes.vertexOf[handle]; idx >= 0 {
		return idx
	}
	idx := len(b.vertices)
	b.vertices = append(b.vertices, b.nodes.positions[handle])
	b.nodes.vertexOf[handle] = idx
	return idx
}

// addPolygon fan triangulates a clockwise polygon of node handles
func (b *builder) addPolygon(handles []int) {
	var points [6]int
	for i, h := range handles {
		points[i] = b.vertexFor(h)
	}
	for i := 0; i+2 < len(handles); i++ {
		b.triangles = append(b.triangles, points[0], points[i+1], points[i+2])
	}
}

func (b *builder) triangulateCell(cx, cy int) {
	entry := caseTable[b.variants[b.cellIndex(cx, cy)]]
	nodes := b.nodes.cellNodes(cx, cy)

	var handles [6]int
	for i, s := range entry.polygon {
		handles[i] = nodes[s]
	}
	b.addPolygon(handles[:len(entry.polygon)])

	for _, run := range entry.edges {
		for i := 1; i < len(run); i++ {
			b.edges.Add(b.vertexFor(nodes[run[i-1]]), b.vertexFor(nodes[run[i]]))
		}
	}
}

// solidFree reports whether a cell can join a block
func (b *builder) solidFree(cx, cy int) bool {
	if cx < 0 || cx >= b.cellsW || cy < 0 || cy >= b.cellsH {
		return false
	}
	i := b.cellIndex(cx, cy)
	return b.variants[i] == variantSolid && !b.merged[i]
}

// columnFree checks the column at cx across the block's current rows
func (b *builder) columnFree(cx, y0, dy, rows int) bool {
	for r := 0; r < rows; r++ {
		if !b.solidFree(cx, y0+dy*r) {
			return false
		}
	}
	return true
}

// rowFree checks the row at cy across the block's current columns
func (b *builder) rowFree(cy, x0, dx, cols int) bool {
	for c := 0; c < cols; c++ {
		if !b.solidFree(x0+dx*c, cy) {
			return false
		}
	}
	return true
}

// mergeSolidBlock grows a rectangle of solid cells from the step's cell and
// emits it as a single quad
func (b *builder) mergeSolidBlock(step cellStep) {
	x0, y0 := step.X, step.Y
	dx, dy := step.DX, step.DY
	w, h := 1, 1
	growX, growY := true, true

	for growX || growY {
		canX := growX && b.columnFree(x0+dx*w, y0, dy, h)
		canY := growY && b.rowFree(y0+dy*h, x0, dx, w)

		// growing both ways also claims the diagonal cell; when that is
		// taken, keep growing along the walk only
		if canX && canY && !b.solidFree(x0+dx*w, y0+dy*h) {
			if step.Vertical {
				canX = false
			} else {
				canY = false
			}
		}

		if canX {
			w++
		} else {
			growX = false
		}
		if canY {
			h++
		} else {
			growY = false
		}

		ratio := float64(w) / float64(h)
		if ratio > b.opts.MaxAspect || ratio < 1/b.opts.MaxAspect {
			break
		}
	}

	minX, maxX := x0, x0+dx*(w-1)
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := y0, y0+dy*(h-1)
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			b.merged[b.cellIndex(cx, cy)] = true
		}
	}

	b.addPolygon([]int{
		b.nodes.control(minX, maxY+1),
		b.nodes.control(maxX+1, maxY+1),
		b.nodes.control(maxX+1, minY),
		b.nodes.control(minX, minY),
	})
}

// extendRim pushes vertices lying on the outer bounds further out so the
// mesh reaches past the playable area
func extendRim(vertices []components.Vec2, lo, hi components.Vec2, cellSize float64) {
	tolerance := rimTolerance * cellSize
	push := RimExtension * cellSize
	for i, v := range vertices {
		if v.X <= lo.X+tolerance {
			v.X -= push
		} else if v.X >= hi.X-tolerance {
			v.X += push
		}
		if v.Y <= lo.Y+tolerance {
			v.Y -= push
		} else if v.Y >= hi.Y-tolerance {
			v.Y += push
		}
		vertices[i] = v
	}
}
