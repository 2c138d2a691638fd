package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-caves/components"
)

func TestCameraFlipsY(t *testing.T) {
	c := NewCamera(200, 100)
	c.Zoom = 2

	x, y := c.WorldToScreen(components.Vec2{})
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)

	x, y = c.WorldToScreen(components.Vec2{X: 10, Y: 10})
	assert.Equal(t, float32(120), x)
	assert.Equal(t, float32(30), y, "world up is screen up")

	p := c.ScreenToWorld(120, 30)
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 10.0, p.Y, 1e-9)
}

func TestCameraFitToBounds(t *testing.T) {
	c := NewCamera(420, 220)
	c.FitToBounds(components.Vec2{X: -50, Y: -25}, components.Vec2{X: 150, Y: 25}, 10)

	assert.Equal(t, components.Vec2{X: 50, Y: 0}, c.Center)
	assert.InDelta(t, 2.0, c.Zoom, 1e-9)

	assert.True(t, c.IsVisible(components.Vec2{X: -50, Y: -25}))
	assert.True(t, c.IsVisible(components.Vec2{X: 149, Y: 24}))
	assert.False(t, c.IsVisible(components.Vec2{X: 200, Y: 0}))

	// degenerate bounds keep the zoom
	c.FitToBounds(components.Vec2{}, components.Vec2{}, 0)
	assert.InDelta(t, 2.0, c.Zoom, 1e-9)
}

func TestCameraPanAndZoom(t *testing.T) {
	c := NewCamera(100, 100)
	c.Zoom = 4
	c.Pan(8, 8)
	assert.Equal(t, components.Vec2{X: 2, Y: -2}, c.Center)

	c.ZoomBy(0.5)
	assert.InDelta(t, 2.0, c.Zoom, 1e-9)
	c.ZoomBy(-1)
	assert.InDelta(t, 2.0, c.Zoom, 1e-9)
}
