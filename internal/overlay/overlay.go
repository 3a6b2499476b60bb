// Package overlay composes graphics on top of an image viewport.
//
// GraphicOverlay is the host graphics register with. It owns the viewport
// size, the mapping from source image pixels to viewport pixels, and the
// ordered list of graphics drawn each frame. It is safe for concurrent use.
package overlay

import (
	"fmt"
	"image"
	"sync"

	"github.com/ironsheep/vision-overlay-mcp/internal/graphic"
)

// GraphicOverlay holds the graphics drawn on one viewport.
type GraphicOverlay struct {
	mu            sync.Mutex
	width, height int
	srcW, srcH    int
	graphics      []graphic.Graphic
	invalidations int

	// OnInvalidate, if set, is called after every redraw request.
	OnInvalidate func()
}

// New creates an overlay with a width x height viewport. Until SetSource is
// called, source and viewport coordinates are the same.
func New(width, height int) *GraphicOverlay {
	return &GraphicOverlay{
		width:  width,
		height: height,
		srcW:   width,
		srcH:   height,
	}
}

var _ graphic.Overlay = (*GraphicOverlay)(nil)

// Width returns the viewport width in pixels.
func (o *GraphicOverlay) Width() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.width
}

// Height returns the viewport height in pixels.
func (o *GraphicOverlay) Height() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.height
}

// SetSize changes the viewport size and requests a redraw.
func (o *GraphicOverlay) SetSize(width, height int) {
	o.mu.Lock()
	o.width, o.height = width, height
	o.mu.Unlock()
	o.PostInvalidate()
}

// SetSource records the size of the image that detection coordinates refer to.
func (o *GraphicOverlay) SetSource(width, height int) {
	o.mu.Lock()
	o.srcW, o.srcH = width, height
	o.mu.Unlock()
	o.PostInvalidate()
}

// Scale returns the horizontal and vertical source to viewport factors.
// A zero source dimension yields a factor of 1.
func (o *GraphicOverlay) Scale() (sx, sy float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scaleLocked()
}

func (o *GraphicOverlay) scaleLocked() (sx, sy float64) {
	sx, sy = 1, 1
	if o.srcW > 0 {
		sx = float64(o.width) / float64(o.srcW)
	}
	if o.srcH > 0 {
		sy = float64(o.height) / float64(o.srcH)
	}
	return sx, sy
}

// MapPoint converts a source image point to viewport coordinates.
func (o *GraphicOverlay) MapPoint(p image.Point) image.Point {
	sx, sy := o.Scale()
	return image.Pt(int(float64(p.X)*sx), int(float64(p.Y)*sy))
}

// MapRect converts a source image rectangle to viewport coordinates.
func (o *GraphicOverlay) MapRect(r image.Rectangle) image.Rectangle {
	return image.Rectangle{Min: o.MapPoint(r.Min), Max: o.MapPoint(r.Max)}
}

// Add appends g to the draw order and requests a redraw.
func (o *GraphicOverlay) Add(g graphic.Graphic) {
	o.mu.Lock()
	o.graphics = append(o.graphics, g)
	o.mu.Unlock()
	o.PostInvalidate()
}

// Remove drops the first occurrence of g. It reports whether g was found.
func (o *GraphicOverlay) Remove(g graphic.Graphic) bool {
	o.mu.Lock()
	found := false
	for i, existing := range o.graphics {
		if existing == g {
			o.graphics = append(o.graphics[:i:i], o.graphics[i+1:]...)
			found = true
			break
		}
	}
	o.mu.Unlock()
	if found {
		o.PostInvalidate()
	}
	return found
}

// Clear removes every graphic and requests a redraw.
func (o *GraphicOverlay) Clear() {
	o.mu.Lock()
	o.graphics = nil
	o.mu.Unlock()
	o.PostInvalidate()
}

// Graphics returns the graphics in draw order.
func (o *GraphicOverlay) Graphics() []graphic.Graphic {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]graphic.Graphic, len(o.graphics))
	copy(out, o.graphics)
	return out
}

// PostInvalidate records a redraw request.
func (o *GraphicOverlay) PostInvalidate() {
	o.mu.Lock()
	o.invalidations++
	cb := o.OnInvalidate
	o.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Invalidations returns how many redraws have been requested.
func (o *GraphicOverlay) Invalidations() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.invalidations
}

// Draw renders every graphic in insertion order. The first failing graphic
// aborts the frame; graphics after it are not drawn.
func (o *GraphicOverlay) Draw(c graphic.Canvas) error {
	// Graphics query the viewport while drawing, so the lock is not held.
	for i, g := range o.Graphics() {
		if err := g.Draw(c); err != nil {
			return fmt.Errorf("graphic %d: %w", i, err)
		}
	}
	return nil
}
