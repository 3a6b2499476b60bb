package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/vision-overlay-mcp/internal/graphic"
)

// DefaultLanguage is used when no language is given.
const DefaultLanguage = "eng"

// Word is one recognized word with the characters that make it up.
type Word struct {
	// Text is Tesseract's reading of the whole word.
	Text string `json:"text"`

	// Confidence is between 0 and 1.
	Confidence float64 `json:"confidence"`

	// Bounds is the word box in source image pixels.
	Bounds image.Rectangle `json:"bounds"`

	// Symbols are the word's characters in reading order.
	Symbols []string `json:"symbols"`
}

// Result contains the recognized text of an image and its words.
type Result struct {
	FullText string `json:"full_text"`
	Words    []Word `json:"words"`
}

// ExtractWords runs OCR on the image at imagePath and returns its words with
// their per-character symbols.
//
// Symbols come from Tesseract's symbol-level iterator. When symbol boxes are
// unavailable a word falls back to one symbol per rune of its text.
func ExtractWords(imagePath string, language string) (*Result, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	return extract(client, language)
}

// ExtractWordsFromRegion runs OCR on region of img. Returned bounds are in
// img coordinates, not relative to the region.
func ExtractWordsFromRegion(img image.Image, region image.Rectangle, language string) (*Result, error) {
	region = region.Intersect(img.Bounds())
	if region.Empty() {
		return nil, fmt.Errorf("region %v is outside image bounds %v", region, img.Bounds())
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.Crop(img, region)); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	result, err := extract(client, language)
	if err != nil {
		return nil, err
	}

	for i := range result.Words {
		result.Words[i].Bounds = result.Words[i].Bounds.Add(region.Min)
	}
	return result, nil
}

func extract(client *gosseract.Client, language string) (*Result, error) {
	if language == "" {
		language = DefaultLanguage
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Keep the text even if the layout could not be read.
		return &Result{FullText: text, Words: []Word{}}, nil
	}

	symbols, err := client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil {
		symbols = nil
	}

	return &Result{
		FullText: text,
		Words:    groupSymbols(words, symbols),
	}, nil
}

// groupSymbols assigns each symbol box to the first word box that contains
// its center. Words with empty text are dropped.
func groupSymbols(words, symbols []gosseract.BoundingBox) []Word {
	used := make([]bool, len(symbols))
	out := make([]Word, 0, len(words))

	for _, w := range words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}

		var syms []string
		for i, s := range symbols {
			if used[i] || strings.TrimSpace(s.Word) == "" {
				continue
			}
			center := image.Pt((s.Box.Min.X+s.Box.Max.X)/2, (s.Box.Min.Y+s.Box.Max.Y)/2)
			if center.In(w.Box) {
				syms = append(syms, strings.TrimSpace(s.Word))
				used[i] = true
			}
		}
		if len(syms) == 0 {
			syms = splitRunes(text)
		}

		out = append(out, Word{
			Text:       text,
			Confidence: w.Confidence / 100.0,
			Bounds:     w.Box,
			Symbols:    syms,
		})
	}
	return out
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// DetectedWord converts w to the value rendered by a text graphic, with its
// box mapped through toViewport.
func (w Word) DetectedWord(toViewport func(image.Rectangle) image.Rectangle) *graphic.DetectedWord {
	box := w.Bounds
	if toViewport != nil {
		box = toViewport(box)
	}
	syms := make([]string, len(w.Symbols))
	copy(syms, w.Symbols)
	return &graphic.DetectedWord{BoundingBox: box, Symbols: syms}
}
