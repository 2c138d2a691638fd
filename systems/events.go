package systems

import (
	"ebiten-caves/ecs"
)

// Event type constants
const (
	EventMapRefreshed ecs.EventType = "map_refreshed"
)

// MapRefreshedEvent is emitted after the map system builds a new mesh
type MapRefreshedEvent struct {
	Width       int     // Grid width in tiles
	Height      int     // Grid height in tiles
	CellSize    float64 // World size of one grid step
	Triangles   int     // Triangle count of the new mesh
	Outlines    int     // Number of traced outlines
	Regenerated bool    // A fresh grid was requested from the source
}

// Type returns the event type
func (e MapRefreshedEvent) Type() ecs.EventType {
	return EventMapRefreshed
}
