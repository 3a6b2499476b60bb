package server

import (
	"fmt"
	"image"

	"github.com/ironsheep/vision-overlay-mcp/internal/canvas"
	"github.com/ironsheep/vision-overlay-mcp/internal/imaging"
	"github.com/ironsheep/vision-overlay-mcp/internal/overlay"
)

// maxViewportSide bounds the rendered frame on each axis.
const maxViewportSide = 8192

// viewportArgs are the arguments shared by every overlay tool.
type viewportArgs struct {
	Path           string  `json:"path"`
	ViewportWidth  int     `json:"viewport_width"`
	ViewportHeight int     `json:"viewport_height"`
	Dim            float64 `json:"dim"`
}

// OverlayResult is a rendered overlay frame.
type OverlayResult struct {
	canvas.RenderResult

	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`

	// Graphics is the number of graphics drawn.
	Graphics int `json:"graphics"`

	// Texts lists the strings drawn, in draw order.
	Texts []string `json:"texts"`
}

// frame is one overlay render in progress.
type frame struct {
	source     image.Image
	background image.Image
	overlay    *overlay.GraphicOverlay
}

// newFrame loads the source image and sets up an overlay sized to the
// requested viewport, with detection coordinates mapped from source pixels.
func (s *Server) newFrame(a viewportArgs) (*frame, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := imaging.ViewportSize(b.Dx(), b.Dy(), a.ViewportWidth, a.ViewportHeight)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", w, h)
	}
	if w > maxViewportSide || h > maxViewportSide {
		return nil, fmt.Errorf("viewport %dx%d exceeds %d pixels per side", w, h, maxViewportSide)
	}

	ov := overlay.New(w, h)
	ov.SetSource(b.Dx(), b.Dy())
	s.debugf("overlay %dx%d for %s (%dx%d)", w, h, a.Path, b.Dx(), b.Dy())

	return &frame{
		source:     img,
		background: imaging.Dim(imaging.FitToViewport(img, w, h), a.Dim),
		overlay:    ov,
	}, nil
}

// mapRect converts a source rectangle to viewport coordinates.
func (f *frame) mapRect(x1, y1, x2, y2 int) image.Rectangle {
	return f.overlay.MapRect(image.Rect(x1, y1, x2, y2))
}

// render draws every graphic onto the background and encodes the frame.
func (f *frame) render(texts []string) (*OverlayResult, error) {
	cv, err := canvas.FromImage(f.background)
	if err != nil {
		return nil, err
	}
	if err := f.overlay.Draw(cv); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	encoded, err := cv.EncodePNG()
	if err != nil {
		return nil, err
	}

	if texts == nil {
		texts = []string{}
	}
	b := f.source.Bounds()
	return &OverlayResult{
		RenderResult: *encoded,
		SourceWidth:  b.Dx(),
		SourceHeight: b.Dy(),
		Graphics:     len(f.overlay.Graphics()),
		Texts:        texts,
	}, nil
}
