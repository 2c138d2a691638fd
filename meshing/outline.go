package meshing

import (
	"sort"

	"ebiten-caves/components"
)

// TraceOutlines follows the boundary edges into ordered outlines. Vertices
// untouched by any edge are skipped. Open chains (cut by the map border)
// are traced first from their head, the vertex with no incoming edge, so
// every chain comes out whole. The remaining edges form loops, each traced
// from its lowest vertex until it returns to its start. Outlines are
// returned ordered by their first vertex.
func TraceOutlines(vertexCount int, edges components.BoundaryEdgeMap) []components.Outline {
	traced := make([]bool, vertexCount)
	for i := range traced {
		traced[i] = true
	}
	incoming := make([]bool, vertexCount)
	for from, to := range edges {
		traced[from] = false
		traced[to] = false
		incoming[to] = true
	}

	var outlines []components.Outline
	follow := func(start int) {
		outline := components.Outline{start}
		traced[start] = true
		for current := start; ; {
			next, ok := edges.Next(current)
			if !ok {
				break
			}
			if next == start {
				outline = append(outline, start)
				break
			}
			if traced[next] {
				break
			}
			traced[next] = true
			outline = append(outline, next)
			current = next
		}
		if len(outline) > 1 {
			outlines = append(outlines, outline)
		}
	}

	for start := 0; start < vertexCount; start++ {
		if _, hasNext := edges.Next(start); hasNext && !incoming[start] && !traced[start] {
			follow(start)
		}
	}
	for start := 0; start < vertexCount; start++ {
		if !traced[start] {
			follow(start)
		}
	}

	sort.SliceStable(outlines, func(i, j int) bool {
		return outlines[i][0] < outlines[j][0]
	})
	return outlines
}
