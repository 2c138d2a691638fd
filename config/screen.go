package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 1280
	WindowHeight = 720

	// Message panel along the bottom of the window
	MessageLines      = 6
	MessageLineHeight = 16
	MessagePanelTop   = WindowHeight - MessageLines*MessageLineHeight - 8

	// Space kept free around the map when framing it
	MapMargin = 24
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
