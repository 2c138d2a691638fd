package systems

import (
	"math"

	"ebiten-caves/components"
)

// Camera maps world space (y up) onto screen pixels (y down)
type Camera struct {
	Center    components.Vec2 // world position shown in the middle of the viewport
	Zoom      float64         // pixels per world unit
	ViewportW int
	ViewportH int
}

// NewCamera creates a camera for a viewport of the given pixel size
func NewCamera(viewportW, viewportH int) *Camera {
	return &Camera{Zoom: 1, ViewportW: viewportW, ViewportH: viewportH}
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(p components.Vec2) (float32, float32) {
	x := (p.X-c.Center.X)*c.Zoom + float64(c.ViewportW)/2
	y := float64(c.ViewportH)/2 - (p.Y-c.Center.Y)*c.Zoom
	return float32(x), float32(y)
}

// ScreenToWorld converts screen pixels to a world position
func (c *Camera) ScreenToWorld(x, y float64) components.Vec2 {
	return components.Vec2{
		X: c.Center.X + (x-float64(c.ViewportW)/2)/c.Zoom,
		Y: c.Center.Y - (y-float64(c.ViewportH)/2)/c.Zoom,
	}
}

// FitToBounds centers the camera on a world rectangle and zooms so the
// whole rectangle plus margin pixels on each side is visible
func (c *Camera) FitToBounds(lo, hi components.Vec2, margin float64) {
	c.Center = components.Vec2{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}

	w, h := hi.X-lo.X, hi.Y-lo.Y
	availW := float64(c.ViewportW) - 2*margin
	availH := float64(c.ViewportH) - 2*margin
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return
	}
	c.Zoom = math.Min(availW/w, availH/h)
}

// Pan moves the camera by a screen pixel offset
func (c *Camera) Pan(dx, dy float64) {
	c.Center.X += dx / c.Zoom
	c.Center.Y -= dy / c.Zoom
}

// ZoomBy scales the zoom, keeping the center fixed
func (c *Camera) ZoomBy(factor float64) {
	if factor > 0 {
		c.Zoom *= factor
	}
}

// IsVisible checks if a world position is inside the viewport
func (c *Camera) IsVisible(p components.Vec2) bool {
	x, y := c.WorldToScreen(p)
	return x >= 0 && x < float32(c.ViewportW) && y >= 0 && y < float32(c.ViewportH)
}
