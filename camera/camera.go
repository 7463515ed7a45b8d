// Package camera maps the toroidal world onto the window.
package camera

import "math"

// Point is a screen or world position.
type Point struct{ X, Y float32 }

// Camera is a pan/zoom viewport over a world that wraps at its edges.
type Camera struct {
	// Centre of the view in world coordinates.
	X, Y float32
	Zoom float32

	ViewportW, ViewportH float32
	WorldW, WorldH       float32

	MinZoom, MaxZoom float32

	// Fraction of the remaining distance covered per Follow call.
	FollowRate float32
}

// New creates a camera that shows the whole world centred in the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		WorldW:     worldW,
		WorldH:     worldH,
		MaxZoom:    6,
		FollowRate: 0.1,
	}
	c.fitZoom()
	c.Reset()
	return c
}

// fitZoom sets MinZoom so the whole world fits in the viewport.
func (c *Camera) fitZoom() {
	c.MinZoom = min(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH)
}

// Reset centres the world at the smallest zoom.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// WorldToScreen converts a world position to the screen, taking the
// shortest way around the wrapped world.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := wrapDelta(wx-c.X, c.WorldW)
	dy := wrapDelta(wy-c.Y, c.WorldH)
	return c.ViewportW/2 + dx*c.Zoom, c.ViewportH/2 + dy*c.Zoom
}

// ScreenToWorld converts a screen position to wrapped world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = mod(c.X+(sx-c.ViewportW/2)/c.Zoom, c.WorldW)
	wy = mod(c.Y+(sy-c.ViewportH/2)/c.Zoom, c.WorldH)
	return wx, wy
}

// Scale converts a world length to pixels.
func (c *Camera) Scale(length float32) float32 { return length * c.Zoom }

// IsVisible reports whether a circle could touch the viewport.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	r := radius * c.Zoom
	return sx+r >= 0 && sy+r >= 0 && sx-r <= c.ViewportW && sy-r <= c.ViewportH
}

// Copies returns the screen positions at which a circle must be drawn.
// Near a world edge the circle shows up on both sides of the seam.
func (c *Camera) Copies(wx, wy, radius float32) []Point {
	sx, sy := c.WorldToScreen(wx, wy)
	out := []Point{{sx, sy}}
	r := radius * c.Zoom
	ww, wh := c.WorldW*c.Zoom, c.WorldH*c.Zoom

	var xs, ys []float32
	if sx-r < 0 {
		xs = append(xs, sx+ww)
	}
	if sx+r > c.ViewportW {
		xs = append(xs, sx-ww)
	}
	if sy-r < 0 {
		ys = append(ys, sy+wh)
	}
	if sy+r > c.ViewportH {
		ys = append(ys, sy-wh)
	}
	for _, x := range xs {
		out = append(out, Point{x, sy})
	}
	for _, y := range ys {
		out = append(out, Point{sx, y})
		for _, x := range xs {
			out = append(out, Point{x, y})
		}
	}
	return out
}

// Resize updates the viewport and keeps the zoom within limits.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW, c.ViewportH = viewportW, viewportH
	c.fitZoom()
	c.SetZoom(c.Zoom)
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float32) {
	c.X = mod(c.X+dx/c.Zoom, c.WorldW)
	c.Y = mod(c.Y+dy/c.Zoom, c.WorldH)
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = max(c.MinZoom, min(zoom, c.MaxZoom))
}

// ZoomAt multiplies the zoom by factor keeping the world point under
// (sx, sy) fixed on screen.
func (c *Camera) ZoomAt(factor, sx, sy float32) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.SetZoom(c.Zoom * factor)
	nx, ny := c.ScreenToWorld(sx, sy)
	c.X = mod(c.X+wrapDelta(wx-nx, c.WorldW), c.WorldW)
	c.Y = mod(c.Y+wrapDelta(wy-ny, c.WorldH), c.WorldH)
}

// Follow eases the view centre toward a world position.
func (c *Camera) Follow(wx, wy float32) {
	c.X = mod(c.X+wrapDelta(wx-c.X, c.WorldW)*c.FollowRate, c.WorldW)
	c.Y = mod(c.Y+wrapDelta(wy-c.Y, c.WorldH)*c.FollowRate, c.WorldH)
}

// wrapDelta folds d into [-size/2, size/2].
func wrapDelta(d, size float32) float32 {
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}
