package graphic

import "image"

// BoxWithText is a detected object's box in overlay coordinates and its caption.
type BoxWithText struct {
	Box  image.Rectangle `json:"box"`
	Text string          `json:"text"`
}

// DetectionGraphic outlines detected objects and writes each caption inside
// the top of its box, shrinking the text so it fits the box width.
type DetectionGraphic struct {
	results   []BoxWithText
	boxPaint  Paint
	textPaint Paint
}

// NewDetectionGraphic creates a detection graphic. The caller adds it to the overlay.
func NewDetectionGraphic(results []BoxWithText, theme DetectionTheme) *DetectionGraphic {
	return &DetectionGraphic{
		results: results,
		boxPaint: Paint{
			Color:       theme.BoxColor,
			Style:       Stroke,
			StrokeWidth: theme.BoxStrokeWidth,
		},
		textPaint: Paint{
			Color:       theme.TextColor,
			Style:       Fill,
			StrokeWidth: theme.TextStrokeWidth,
			TextSize:    theme.MaxTextSize,
		},
	}
}

// Draw renders every box and its caption in order.
func (g *DetectionGraphic) Draw(c Canvas) error {
	for _, r := range g.results {
		c.DrawRect(r.Box, g.boxPaint)
		if r.Text == "" {
			continue
		}

		p := g.textPaint
		boxWidth := float64(r.Box.Dx())
		if w := c.MeasureText(r.Text, p); w > 0 {
			if fit := p.TextSize * boxWidth / w; fit < p.TextSize {
				p.TextSize = fit
			}
		}

		margin := (boxWidth - c.MeasureText(r.Text, p)) / 2.0
		if margin < 0 {
			margin = 0
		}
		ascent := -c.FontMetrics(p).Top
		c.DrawText(r.Text, float64(r.Box.Min.X)+margin, float64(r.Box.Min.Y)+ascent, p)
	}
	return nil
}
