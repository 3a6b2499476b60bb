package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFrequency is a quantized color and the share of pixels it covers.
type ColorFrequency struct {
	Hex        string  `json:"hex"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// DominantColors returns up to count quantized colors of region (the whole
// image when region is empty), most frequent first.
//
// Each 8-bit channel is quantized to a multiple of 16 before counting, so
// near-identical shades are grouped.
func DominantColors(img image.Image, count int, region image.Rectangle) []ColorFrequency {
	bounds := img.Bounds()
	if !region.Empty() {
		bounds = region.Intersect(bounds)
	}

	counts := make(map[[3]uint8]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := [3]uint8{
				uint8((r >> 8) / 16 * 16),
				uint8((g >> 8) / 16 * 16),
				uint8((b >> 8) / 16 * 16),
			}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c := color.RGBA{key[0], key[1], key[2], 255}
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", key[0], key[1], key[2]),
			Name:       ColorName(c),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count >= 0 && len(colors) > count {
		colors = colors[:count]
	}
	return colors
}

type namedColor struct {
	name string
	lab  colorful.Color
}

// palette is matched in CIE Lab space, which tracks perceived difference
// better than RGB distance.
var palette = []namedColor{
	named("black", 0, 0, 0),
	named("white", 255, 255, 255),
	named("gray", 128, 128, 128),
	named("silver", 192, 192, 192),
	named("red", 220, 20, 60),
	named("maroon", 128, 0, 0),
	named("orange", 255, 140, 0),
	named("brown", 139, 69, 19),
	named("beige", 245, 222, 179),
	named("yellow", 255, 215, 0),
	named("olive", 128, 128, 0),
	named("green", 34, 139, 34),
	named("lime", 50, 205, 50),
	named("teal", 0, 128, 128),
	named("cyan", 0, 206, 209),
	named("sky blue", 135, 206, 235),
	named("blue", 30, 60, 220),
	named("navy", 0, 0, 128),
	named("purple", 128, 0, 128),
	named("pink", 255, 105, 180),
}

func named(name string, r, g, b uint8) namedColor {
	c, _ := colorful.MakeColor(color.RGBA{r, g, b, 255})
	return namedColor{name: name, lab: c}
}

// ColorName returns the palette name closest to c.
func ColorName(c color.Color) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return "transparent"
	}

	best, bestDist := "", math.Inf(1)
	for _, p := range palette {
		if d := cc.DistanceLab(p.lab); d < bestDist {
			best, bestDist = p.name, d
		}
	}
	return best
}

// ColorLabels describes img as up to count labels such as "navy 42%",
// ordered by coverage. Quantized colors sharing a name are merged.
func ColorLabels(img image.Image, count int) []string {
	if count <= 0 {
		return []string{}
	}

	type share struct {
		name string
		pct  float64
	}
	byName := make(map[string]*share)
	var order []*share
	for _, c := range DominantColors(img, -1, image.Rectangle{}) {
		s, ok := byName[c.Name]
		if !ok {
			s = &share{name: c.Name}
			byName[c.Name] = s
			order = append(order, s)
		}
		s.pct += c.Percentage
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].pct > order[j].pct
	})
	if len(order) > count {
		order = order[:count]
	}

	labels := make([]string, len(order))
	for i, s := range order {
		labels[i] = fmt.Sprintf("%s %d%%", s.name, int(math.Round(s.pct)))
	}
	return labels
}
