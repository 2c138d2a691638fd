package config

// Map generation and meshing defaults used by the viewer
const (
	// Requested grid size in tiles
	MapWidth  = 128
	MapHeight = 72

	// Directory holding the JSON cave presets
	PresetDirectory = "data/presets"

	// Traversal order used until the user cycles it
	DefaultTraversal = "rows"

	// A floor needs at least this many outline points to hold a spawn
	SpawnFloorPoints = 4
)
