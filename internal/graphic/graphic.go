package graphic

import (
	"errors"
	"image"
	"image/color"
)

// ErrInvalidState reports a graphic that was constructed without the data it
// needs to draw. It is a programming error and aborts the current frame.
var ErrInvalidState = errors.New("invalid state")

// PaintStyle selects whether shapes are filled or outlined.
type PaintStyle int

const (
	// Fill paints the interior of a shape.
	Fill PaintStyle = iota
	// Stroke paints only the outline of a shape using StrokeWidth.
	Stroke
)

// Paint describes how a primitive is drawn on a Canvas.
type Paint struct {
	Color       color.Color
	Style       PaintStyle
	StrokeWidth float64
	TextSize    float64
}

// FontMetrics holds the vertical extent of a font relative to its baseline.
//
// Top is negative (above the baseline) and Bottom is positive (below it),
// so a text box drawn with baseline y spans y+Top to y+Bottom.
type FontMetrics struct {
	Top    float64
	Bottom float64
}

// Canvas is the drawing surface a Graphic renders onto.
//
// Coordinates are viewport pixels with the origin at the top-left corner.
// Text is positioned by its left edge and baseline.
type Canvas interface {
	DrawRect(r image.Rectangle, p Paint)
	DrawText(text string, x, y float64, p Paint)
	MeasureText(text string, p Paint) float64
	FontMetrics(p Paint) FontMetrics
}

// Graphic is a single annotation drawn by an overlay once per frame.
type Graphic interface {
	Draw(c Canvas) error
}

// Overlay is the host a graphic is drawn on. Graphics keep a reference to it
// for viewport queries but never control its lifecycle.
type Overlay interface {
	Width() int
	Height() int
	Add(g Graphic)
	PostInvalidate()
}

// Anchor returns the point one quarter into the overlay viewport on both axes.
func Anchor(o Overlay) (x, y float64) {
	return float64(o.Width()) / 4.0, float64(o.Height()) / 4.0
}
