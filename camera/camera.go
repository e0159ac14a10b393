// Package camera maps the unit-square world onto the screen.
package camera

import "github.com/pthm-cable/flock/vecmath"

// Camera controls the viewport into the simulation world.
// The whole world fits the shorter screen side at zoom 1.
type Camera struct {
	// Center of the view in world coordinates
	X, Y float32

	// Zoom level (1.0 = whole world visible)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world with the whole world visible.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		X:         0.5,
		Y:         0.5,
		Zoom:      1,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   1,
		MaxZoom:   8,
	}
}

// Scale returns how many pixels one world unit spans.
func (c *Camera) Scale() float32 {
	return min(c.ViewportW, c.ViewportH) * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(v vecmath.Vec2) (sx, sy float32) {
	s := c.Scale()
	sx = c.ViewportW/2 + (v.X-c.X)*s
	sy = c.ViewportH/2 + (v.Y-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) vecmath.Vec2 {
	s := c.Scale()
	return vecmath.New(
		c.X+(sx-c.ViewportW/2)/s,
		c.Y+(sy-c.ViewportH/2)/s,
	)
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels. The center
// never leaves the world.
func (c *Camera) Pan(dx, dy float32) {
	s := c.Scale()
	c.X = vecmath.Clamp(c.X+dx/s, 0, 1)
	c.Y = vecmath.Clamp(c.Y+dy/s, 0, 1)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = vecmath.Clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X, c.Y = 0.5, 0.5
	c.Zoom = 1
}
