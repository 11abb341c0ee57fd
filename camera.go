package scenetree

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits. Every zoom change is clamped into [MinZoom, MaxZoom].
const (
	MinZoom = 0.1
	MaxZoom = 2.0
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the scene: the world-space point shown at
// the viewport center and the zoom factor.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on (x, y) at zoom 1.
func NewCamera(x, y float64, viewport Rect) *Camera {
	return &Camera{
		X:        x,
		Y:        y,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetViewport changes the screen rectangle, typically on window resize.
func (c *Camera) SetViewport(vp Rect) {
	if vp != c.Viewport {
		c.Viewport = vp
		c.dirty = true
	}
}

// ZoomBy adds delta to the zoom and clamps the result.
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom = clampZoom(c.Zoom + delta)
	c.dirty = true
}

// clampZoom restricts z to [MinZoom, MaxZoom]. NaN maps to MinZoom.
func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return MinZoom
	}
	return math.Max(MinZoom, math.Min(z, MaxZoom))
}

// PanScreen moves the camera so the scene follows a pointer moved by
// (dx, dy) screen pixels. Cancels any running scroll animation.
func (c *Camera) PanScreen(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
	c.scrollTween = nil
	c.dirty = true
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation. Called once per frame.
func (c *Camera) update(dt float32) {
	prevX, prevY := c.X, c.Y

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// MarkDirty forces a recomputation of the view matrix.
// Call after setting X, Y or Zoom directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
