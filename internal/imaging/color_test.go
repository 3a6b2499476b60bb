package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(100, 100)

	colors := DominantColors(img, 10, image.Rectangle{})
	if len(colors) != 4 {
		t.Fatalf("colors: got %d, want 4", len(colors))
	}
	for _, c := range colors {
		if c.Percentage != 25 {
			t.Errorf("%s: got %.2f%%, want 25%%", c.Hex, c.Percentage)
		}
		if c.Name == "" {
			t.Errorf("%s: empty name", c.Hex)
		}
	}
}

func TestDominantColors_Quantization(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0xF0, 0xF0, 0xF0, 255})
	img.Set(1, 0, color.RGBA{0xFA, 0xFA, 0xFA, 255})

	colors := DominantColors(img, 5, image.Rectangle{})
	if len(colors) != 1 {
		t.Fatalf("colors: got %d, want 1 after quantization", len(colors))
	}
	if colors[0].Hex != "#F0F0F0" || colors[0].Percentage != 100 {
		t.Errorf("got %+v, want #F0F0F0 at 100%%", colors[0])
	}
}

func TestDominantColors_CountAndRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	if colors := DominantColors(img, 2, image.Rectangle{}); len(colors) != 2 {
		t.Errorf("count limit: got %d, want 2", len(colors))
	}

	colors := DominantColors(img, 10, image.Rect(0, 0, 50, 50))
	if len(colors) != 1 || colors[0].Hex != "#F00000" {
		t.Errorf("top-left region: got %+v, want only red", colors)
	}

	// regions outside the image are clipped
	colors = DominantColors(img, 10, image.Rect(75, 75, 500, 500))
	if len(colors) != 1 || colors[0].Hex != "#F0F0F0" {
		t.Errorf("clipped region: got %+v, want only white", colors)
	}
}

func TestColorName(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{0, 0, 0, 255}, "black"},
		{color.RGBA{255, 255, 255, 255}, "white"},
		{color.RGBA{250, 10, 40, 255}, "red"},
		{color.RGBA{0, 0, 120, 255}, "navy"},
		{color.RGBA{40, 140, 40, 255}, "green"},
		{color.RGBA{0, 0, 0, 0}, "transparent"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ColorName(tt.c); got != tt.want {
				t.Errorf("ColorName(%v): got %s, want %s", tt.c, got, tt.want)
			}
		})
	}
}

func TestColorLabels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 100; x++ {
			if x < 70 {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}

	labels := ColorLabels(img, 5)
	if len(labels) != 2 {
		t.Fatalf("labels: got %v, want 2", labels)
	}
	if labels[0] != "black 70%" || labels[1] != "white 30%" {
		t.Errorf("labels: got %v, want [black 70%% white 30%%]", labels)
	}

	if got := ColorLabels(img, 1); len(got) != 1 || got[0] != "black 70%" {
		t.Errorf("count 1: got %v", got)
	}
	if got := ColorLabels(img, 0); len(got) != 0 {
		t.Errorf("count 0: got %v, want empty", got)
	}
}

func TestColorLabels_MergesShades(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{20, 20, 20, 255})

	labels := ColorLabels(img, 3)
	if len(labels) != 1 || labels[0] != "black 100%" {
		t.Errorf("labels: got %v, want [black 100%%]", labels)
	}
}
