package graphic

import "image/color"

// TextTheme configures a TextGraphic.
type TextTheme struct {
	Color       color.Color
	TextSize    float64
	StrokeWidth float64
}

// DefaultTextTheme is green outlined boxes with large green text.
func DefaultTextTheme() TextTheme {
	return TextTheme{
		Color:       color.RGBA{0, 255, 0, 255},
		TextSize:    60.0,
		StrokeWidth: 5.0,
	}
}

// LabelTheme configures a LabelGraphic.
type LabelTheme struct {
	TextColor       color.Color
	BackgroundColor color.Color
	TextSize        float64

	// LineHeight is how far each label sits above the previous one.
	LineHeight float64
}

// DefaultLabelTheme is white text on a faint black background.
func DefaultLabelTheme() LabelTheme {
	return LabelTheme{
		TextColor:       color.White,
		BackgroundColor: color.NRGBA{0, 0, 0, 50},
		TextSize:        60.0,
		LineHeight:      62.0,
	}
}

// DetectionTheme configures a DetectionGraphic.
type DetectionTheme struct {
	BoxColor        color.Color
	BoxStrokeWidth  float64
	TextColor       color.Color
	TextStrokeWidth float64

	// MaxTextSize is the starting text size; it shrinks to fit narrow boxes.
	MaxTextSize float64
}

// DefaultDetectionTheme is red boxes with yellow captions.
func DefaultDetectionTheme() DetectionTheme {
	return DetectionTheme{
		BoxColor:        color.RGBA{255, 0, 0, 255},
		BoxStrokeWidth:  8.0,
		TextColor:       color.RGBA{255, 255, 0, 255},
		TextStrokeWidth: 2.0,
		MaxTextSize:     96.0,
	}
}
