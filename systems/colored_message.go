package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard messages (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeGeneration is for cave generation reports (gold)
	MessageTypeGeneration
	// MessageTypeMesh is for meshing reports (blue)
	MessageTypeMesh
	// MessageTypeAlert is for errors and warnings (red)
	MessageTypeAlert
)

// ColoredMessage stores a message with its associated type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeGeneration:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeMesh:
		return color.RGBA{100, 149, 237, 255} // Cornflower Blue
	case MessageTypeAlert:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
