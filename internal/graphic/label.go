package graphic

import (
	"image"
	"sync"
)

// LabelGraphic draws a list of labels stacked upward from the overlay anchor,
// each on a translucent background.
//
// Draw and SetLabels share a mutex, so a frame always sees one complete
// label list and two frames never interleave their output.
type LabelGraphic struct {
	overlay   Overlay
	textPaint Paint
	bgPaint   Paint
	lineStep  float64

	mu     sync.Mutex
	labels []string
}

// NewLabelGraphic creates a label graphic. The caller adds it to the overlay.
func NewLabelGraphic(o Overlay, labels []string, theme LabelTheme) *LabelGraphic {
	return &LabelGraphic{
		overlay: o,
		labels:  copyLabels(labels),
		textPaint: Paint{
			Color:    theme.TextColor,
			Style:    Fill,
			TextSize: theme.TextSize,
		},
		bgPaint: Paint{
			Color:    theme.BackgroundColor,
			Style:    Fill,
			TextSize: theme.TextSize,
		},
		lineStep: theme.LineHeight,
	}
}

// SetLabels replaces the whole label list. Later writes to labels do not
// reach the graphic.
func (g *LabelGraphic) SetLabels(labels []string) {
	labels = copyLabels(labels)
	g.mu.Lock()
	g.labels = labels
	g.mu.Unlock()
}

// Labels returns a copy of the current label list.
func (g *LabelGraphic) Labels() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return copyLabels(g.labels)
}

func copyLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// Draw renders every label, advancing upward by the theme line height.
func (g *LabelGraphic) Draw(c Canvas) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	x, y := Anchor(g.overlay)
	for _, label := range g.labels {
		g.drawTextWithBackground(c, label, x, y)
		y -= g.lineStep
	}
	return nil
}

func (g *LabelGraphic) drawTextWithBackground(c Canvas, text string, x, y float64) {
	m := c.FontMetrics(g.textPaint)
	width := c.MeasureText(text, g.textPaint)
	bg := image.Rect(int(x), int(y+m.Top), int(x+width), int(y+m.Bottom))
	c.DrawRect(bg, g.bgPaint)
	c.DrawText(text, x, y, g.textPaint)
}
