// Package canvas implements graphic.Canvas on top of a gg drawing context.
//
// Text is rendered with the Go Regular TrueType font. Font faces are cached
// per text size since graphics reuse a small set of sizes every frame.
package canvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ironsheep/vision-overlay-mcp/internal/graphic"
)

var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// Font returns the font used for all text.
func Font() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Canvas draws onto an RGBA image. It is safe for concurrent use.
type Canvas struct {
	mu    sync.Mutex
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

var _ graphic.Canvas = (*Canvas)(nil)

// New creates a transparent width x height canvas.
func New(width, height int) (*Canvas, error) {
	return newCanvas(gg.NewContext(width, height))
}

// FromImage creates a canvas whose background is a copy of img.
func FromImage(img image.Image) (*Canvas, error) {
	return newCanvas(gg.NewContextForImage(img))
}

func newCanvas(dc *gg.Context) (*Canvas, error) {
	f, err := Font()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Canvas{
		dc:    dc,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// face returns the cached face for size. Callers hold c.mu.
func (c *Canvas) face(size float64) font.Face {
	if size <= 0 {
		size = 1
	}
	f, ok := c.faces[size]
	if !ok {
		f = truetype.NewFace(c.font, &truetype.Options{Size: size})
		c.faces[size] = f
	}
	return f
}

// DrawRect fills or outlines r depending on the paint style.
func (c *Canvas) DrawRect(r image.Rectangle, p graphic.Paint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dc.SetColor(p.Color)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if p.Style == graphic.Stroke {
		c.dc.SetLineWidth(p.StrokeWidth)
		c.dc.Stroke()
		return
	}
	c.dc.Fill()
}

// DrawText draws text with its left edge at x and its baseline at y.
func (c *Canvas) DrawText(text string, x, y float64, p graphic.Paint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dc.SetFontFace(c.face(p.TextSize))
	c.dc.SetColor(p.Color)
	c.dc.DrawString(text, x, y)
}

// MeasureText returns the advance width of text at the paint's size.
func (c *Canvas) MeasureText(text string, p graphic.Paint) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dc.SetFontFace(c.face(p.TextSize))
	w, _ := c.dc.MeasureString(text)
	return w
}

// FontMetrics returns the ascent and descent at the paint's size.
func (c *Canvas) FontMetrics(p graphic.Paint) graphic.FontMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.face(p.TextSize).Metrics()
	return graphic.FontMetrics{
		Top:    -float64(m.Ascent) / 64,
		Bottom: float64(m.Descent) / 64,
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.Image()
}

// RenderResult contains a rendered frame encoded as PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes the current frame as base64 PNG.
func (c *Canvas) EncodePNG() (*RenderResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderResult{
		Width:       c.dc.Width(),
		Height:      c.dc.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
