package graphic

import (
	"errors"
	"image"
	"strings"
	"testing"
)

func TestNewTextGraphic_RegistersAndInvalidates(t *testing.T) {
	o := &fakeOverlay{width: 800, height: 600}
	word := &DetectedWord{BoundingBox: image.Rect(10, 20, 110, 60), Symbols: []string{"h", "i"}}

	g := NewTextGraphic(o, word, DefaultTextTheme())

	if len(o.added) != 1 || o.added[0] != g {
		t.Fatalf("overlay graphics: got %v, want the new graphic", o.added)
	}
	if o.invalidations != 1 {
		t.Errorf("invalidations: got %d, want 1", o.invalidations)
	}
	if g.Word() != word {
		t.Error("Word() did not return the constructed word")
	}
}

func TestTextGraphic_Draw(t *testing.T) {
	o := &fakeOverlay{width: 800, height: 600}
	theme := DefaultTextTheme()
	word := &DetectedWord{BoundingBox: image.Rect(10, 20, 110, 60), Symbols: []string{"H", "e", "l", "l", "o"}}
	g := NewTextGraphic(o, word, theme)

	c := &recordingCanvas{}
	if err := g.Draw(c); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	ops := c.recorded()
	if len(ops) != 2 {
		t.Fatalf("ops: got %d, want 2", len(ops))
	}

	rect := ops[0]
	if rect.kind != "rect" || rect.rect != word.BoundingBox {
		t.Errorf("first op: got %+v, want rect %v", rect, word.BoundingBox)
	}
	if rect.paint.Style != Stroke || rect.paint.StrokeWidth != theme.StrokeWidth {
		t.Errorf("rect paint: got %+v", rect.paint)
	}

	text := ops[1]
	if text.kind != "text" || text.text != "Hello" {
		t.Errorf("second op: got %+v, want text Hello", text)
	}
	if text.x != 10 || text.y != 60 {
		t.Errorf("text position: got (%v,%v), want (10,60)", text.x, text.y)
	}
	if text.paint.TextSize != theme.TextSize {
		t.Errorf("text size: got %v, want %v", text.paint.TextSize, theme.TextSize)
	}
}

func TestTextGraphic_DrawConcatenatesSymbols(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		want    string
	}{
		{"single", []string{"a"}, "a"},
		{"word", []string{"w", "o", "r", "d"}, "word"},
		{"spaces kept", []string{"a", " ", "b"}, "a b"},
		{"multi-byte", []string{"é", "t", "é"}, "été"},
		{"multi-rune symbols", []string{"ab", "cd"}, "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &fakeOverlay{width: 100, height: 100}
			word := &DetectedWord{BoundingBox: image.Rect(0, 0, 10, 10), Symbols: tt.symbols}
			c := &recordingCanvas{}
			if err := NewTextGraphic(o, word, DefaultTextTheme()).Draw(c); err != nil {
				t.Fatalf("Draw failed: %v", err)
			}
			ops := c.recorded()
			if got := ops[len(ops)-1].text; got != tt.want {
				t.Errorf("text: got %q, want %q", got, tt.want)
			}
			if got := word.Text(); got != strings.Join(tt.symbols, "") {
				t.Errorf("Text(): got %q", got)
			}
		})
	}
}

func TestTextGraphic_DrawNilWord(t *testing.T) {
	o := &fakeOverlay{width: 800, height: 600}
	g := NewTextGraphic(o, nil, DefaultTextTheme())

	c := &recordingCanvas{}
	err := g.Draw(c)
	if err == nil {
		t.Fatal("Draw should fail for a nil word")
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("error should wrap ErrInvalidState, got %v", err)
	}
	if !strings.Contains(err.Error(), "attempting to draw a null text") {
		t.Errorf("error message: got %q", err.Error())
	}
	if n := len(c.recorded()); n != 0 {
		t.Errorf("canvas calls: got %d, want 0", n)
	}
}

func TestTextGraphic_DrawDoesNotMutateWord(t *testing.T) {
	o := &fakeOverlay{width: 800, height: 600}
	symbols := []string{"o", "k"}
	word := &DetectedWord{BoundingBox: image.Rect(1, 2, 3, 4), Symbols: symbols}
	g := NewTextGraphic(o, word, DefaultTextTheme())

	for i := 0; i < 3; i++ {
		c := &recordingCanvas{}
		if err := g.Draw(c); err != nil {
			t.Fatalf("Draw %d failed: %v", i, err)
		}
		if ops := c.recorded(); len(ops) != 2 || ops[1].text != "ok" {
			t.Fatalf("Draw %d: got ops %+v", i, ops)
		}
	}

	if word.BoundingBox != image.Rect(1, 2, 3, 4) || len(word.Symbols) != 2 || symbols[0] != "o" {
		t.Errorf("word mutated: %+v", word)
	}
}

func TestTextGraphic_PositionIgnoresViewport(t *testing.T) {
	word := &DetectedWord{BoundingBox: image.Rect(5, 5, 50, 25), Symbols: []string{"x"}}

	for _, size := range []image.Point{{0, 0}, {800, 600}, {4000, 3000}} {
		o := &fakeOverlay{width: size.X, height: size.Y}
		c := &recordingCanvas{}
		if err := NewTextGraphic(o, word, DefaultTextTheme()).Draw(c); err != nil {
			t.Fatalf("Draw failed: %v", err)
		}
		text := c.recorded()[1]
		if text.x != 5 || text.y != 25 {
			t.Errorf("viewport %v: text at (%v,%v), want (5,25)", size, text.x, text.y)
		}
	}
}
