package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/vision-overlay-mcp/internal/graphic"
	"github.com/ironsheep/vision-overlay-mcp/internal/imaging"
	"github.com/ironsheep/vision-overlay-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "overlay_labels").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Source images
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_color_labels":
		return s.handleImageColorLabels(args)

	// Overlays
	case "overlay_words":
		return s.handleOverlayWords(args)
	case "overlay_ocr_words":
		return s.handleOverlayOCRWords(args)
	case "overlay_labels":
		return s.handleOverlayLabels(args)
	case "overlay_detections":
		return s.handleOverlayDetections(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Source Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageColorLabelsArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// ColorLabelsResult lists an image's color labels.
type ColorLabelsResult struct {
	Labels []string `json:"labels"`
}

func (s *Server) handleImageColorLabels(args json.RawMessage) (interface{}, error) {
	var a imageColorLabelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &ColorLabelsResult{Labels: imaging.ColorLabels(img, a.Count)}, nil
}

// === Overlay Handlers ===

// wordArg is a word in source image coordinates. Text is split into runes
// when Symbols is empty.
type wordArg struct {
	X1      int      `json:"x1"`
	Y1      int      `json:"y1"`
	X2      int      `json:"x2"`
	Y2      int      `json:"y2"`
	Text    string   `json:"text,omitempty"`
	Symbols []string `json:"symbols,omitempty"`
}

type overlayWordsArgs struct {
	viewportArgs
	// A null entry is kept and fails the render.
	Words []*wordArg `json:"words"`
}

func (s *Server) handleOverlayWords(args json.RawMessage) (interface{}, error) {
	var a overlayWordsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := s.newFrame(a.viewportArgs)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(a.Words))
	for _, w := range a.Words {
		var word *graphic.DetectedWord
		if w != nil {
			symbols := w.Symbols
			if len(symbols) == 0 {
				for _, r := range w.Text {
					symbols = append(symbols, string(r))
				}
			}
			word = &graphic.DetectedWord{
				BoundingBox: f.mapRect(w.X1, w.Y1, w.X2, w.Y2),
				Symbols:     symbols,
			}
			texts = append(texts, word.Text())
		}
		graphic.NewTextGraphic(f.overlay, word, s.cfg.Text)
	}
	return f.render(texts)
}

type overlayOCRWordsArgs struct {
	viewportArgs
	Language      string  `json:"language"`
	MinConfidence float64 `json:"min_confidence"`

	// Region limits recognition to a named part of the source image.
	Region string `json:"region"`
}

func (s *Server) handleOverlayOCRWords(args json.RawMessage) (interface{}, error) {
	var a overlayOCRWordsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.cfg.Language
	}
	f, err := s.newFrame(a.viewportArgs)
	if err != nil {
		return nil, err
	}

	region, err := imaging.NamedRegion(f.source.Bounds(), a.Region)
	if err != nil {
		return nil, err
	}

	var result *ocr.Result
	if region == f.source.Bounds() {
		result, err = ocr.ExtractWords(a.Path, a.Language)
	} else {
		result, err = ocr.ExtractWordsFromRegion(f.source, region, a.Language)
	}
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(result.Words))
	for _, w := range result.Words {
		if w.Confidence < a.MinConfidence {
			continue
		}
		word := w.DetectedWord(f.overlay.MapRect)
		graphic.NewTextGraphic(f.overlay, word, s.cfg.Text)
		texts = append(texts, word.Text())
	}
	s.debugf("ocr found %d words, drawing %d", len(result.Words), len(texts))
	return f.render(texts)
}

type overlayLabelsArgs struct {
	viewportArgs
	Labels    []string `json:"labels"`
	AutoCount int      `json:"auto_count"`
}

func (s *Server) handleOverlayLabels(args json.RawMessage) (interface{}, error) {
	var a overlayLabelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := s.newFrame(a.viewportArgs)
	if err != nil {
		return nil, err
	}

	labels := a.Labels
	if len(labels) == 0 && a.AutoCount > 0 {
		labels = imaging.ColorLabels(f.source, a.AutoCount)
	}
	f.overlay.Add(graphic.NewLabelGraphic(f.overlay, labels, s.cfg.Labels))
	return f.render(labels)
}

type detectionArg struct {
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
	Text string `json:"text"`
}

type overlayDetectionsArgs struct {
	viewportArgs
	Detections []detectionArg `json:"detections"`
}

func (s *Server) handleOverlayDetections(args json.RawMessage) (interface{}, error) {
	var a overlayDetectionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := s.newFrame(a.viewportArgs)
	if err != nil {
		return nil, err
	}

	viewport := image.Rect(0, 0, f.overlay.Width(), f.overlay.Height())
	results := make([]graphic.BoxWithText, 0, len(a.Detections))
	texts := make([]string, 0, len(a.Detections))
	for _, d := range a.Detections {
		box := f.mapRect(d.X1, d.Y1, d.X2, d.Y2)
		if box.Empty() {
			return nil, fmt.Errorf("invalid detection box (%d,%d)-(%d,%d)", d.X1, d.Y1, d.X2, d.Y2)
		}
		box = box.Intersect(viewport)
		if box.Empty() {
			s.debugf("detection (%d,%d)-(%d,%d) is outside the viewport", d.X1, d.Y1, d.X2, d.Y2)
			continue
		}
		results = append(results, graphic.BoxWithText{Box: box, Text: d.Text})
		if d.Text != "" {
			texts = append(texts, d.Text)
		}
	}
	f.overlay.Add(graphic.NewDetectionGraphic(results, s.cfg.Detection))
	return f.render(texts)
}
