package components

// Vec2 is a position in world space (y up)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Outline is an ordered list of vertex indices. It is closed when the
// last index repeats the first.
type Outline []int

// Closed reports whether the outline loops back to its start
func (o Outline) Closed() bool {
	return len(o) > 1 && o[0] == o[len(o)-1]
}

// BoundaryEdgeMap maps a vertex index to the next vertex clockwise
// around the solid region
type BoundaryEdgeMap map[int]int

// Add registers the edge from -> to. A vertex keeps its first outgoing
// edge; a second one is refused and false is returned.
func (m BoundaryEdgeMap) Add(from, to int) bool {
	if _, exists := m[from]; exists {
		return false
	}
	m[from] = to
	return true
}

// Next returns the vertex following from, if any
func (m BoundaryEdgeMap) Next(from int) (int, bool) {
	to, ok := m[from]
	return to, ok
}

// Mesh is the output of contour building. It is not modified after
// it has been returned.
type Mesh struct {
	Vertices  []Vec2
	Triangles []int // 3 indices per triangle
	Outlines  []Outline

	CellSize float64
	Origin   Vec2 // world position of grid point (0, 0)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// OutlinePoints resolves an outline into world positions
func (m *Mesh) OutlinePoints(o Outline) []Vec2 {
	points := make([]Vec2, len(o))
	for i, idx := range o {
		points[i] = m.Vertices[idx]
	}
	return points
}
