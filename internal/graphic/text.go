package graphic

import (
	"fmt"
	"image"
	"strings"
)

// DetectedWord is one recognized word in overlay coordinates.
type DetectedWord struct {
	BoundingBox image.Rectangle `json:"bounding_box"`
	Symbols     []string        `json:"symbols"`
}

// Text joins the symbols in order with no separators.
func (w *DetectedWord) Text() string {
	return strings.Join(w.Symbols, "")
}

// TextGraphic draws a word's bounding box with its text on the bottom edge.
type TextGraphic struct {
	overlay   Overlay
	word      *DetectedWord
	rectPaint Paint
	textPaint Paint
}

// NewTextGraphic creates a graphic for word, adds it to o and requests a redraw.
func NewTextGraphic(o Overlay, word *DetectedWord, theme TextTheme) *TextGraphic {
	g := &TextGraphic{
		overlay: o,
		word:    word,
		rectPaint: Paint{
			Color:       theme.Color,
			Style:       Stroke,
			StrokeWidth: theme.StrokeWidth,
		},
		textPaint: Paint{
			Color:    theme.Color,
			Style:    Fill,
			TextSize: theme.TextSize,
		},
	}
	o.Add(g)
	o.PostInvalidate()
	return g
}

// Word returns the word this graphic renders, or nil.
func (g *TextGraphic) Word() *DetectedWord {
	return g.word
}

// Draw renders the bounding box and the concatenated symbols.
func (g *TextGraphic) Draw(c Canvas) error {
	if g.word == nil {
		return fmt.Errorf("%w: attempting to draw a null text", ErrInvalidState)
	}

	// The anchor is not used for placement; text follows the word's own box.
	_, _ = Anchor(g.overlay)

	rect := g.word.BoundingBox
	c.DrawRect(rect, g.rectPaint)
	c.DrawText(g.word.Text(), float64(rect.Min.X), float64(rect.Max.Y), g.textPaint)
	return nil
}
