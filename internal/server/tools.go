package server

import "github.com/ironsheep/vision-overlay-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the source image file",
	}
}

func intProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// overlaySchema builds the input schema of an overlay tool. Every overlay
// tool shares the source image and viewport properties.
func overlaySchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"path":            pathProperty(),
		"viewport_width":  intProperty("Rendered frame width in pixels. Derived from the source aspect ratio when omitted."),
		"viewport_height": intProperty("Rendered frame height in pixels. Derived from the source aspect ratio when omitted."),
		"dim": map[string]interface{}{
			"type":        "number",
			"description": "Darken the background by this fraction (0-1) so overlays stand out. Default 0",
			"default":     0.0,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path"}, required...),
	}
}

// boxProperties are source-pixel rectangle corners, with x2 and y2 exclusive.
func boxProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"x1": intProperty("Left edge X coordinate in source pixels"),
		"y1": intProperty("Top edge Y coordinate in source pixels"),
		"x2": intProperty("Right edge X coordinate in source pixels (exclusive)"),
		"y2": intProperty("Bottom edge Y coordinate in source pixels (exclusive)"),
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Source Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for later overlay calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_color_labels",
			Description: "Describe an image's dominant colors as labels such as \"blue 42%\", most common first. The labels can be passed to overlay_labels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of labels to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},

		// Overlays
		{
			Name:        "overlay_words",
			Description: "Render recognized words over an image. Each word gets an outlined bounding box with its text drawn at the box's bottom-left corner. Returns a base64-encoded PNG.",
			InputSchema: overlaySchema(map[string]interface{}{
				"words": map[string]interface{}{
					"type":        "array",
					"description": "Words in source pixel coordinates. The drawn text is the concatenation of symbols, or text when symbols is omitted.",
					"items": map[string]interface{}{
						"type": "object",
						"properties": boxProperties(map[string]interface{}{
							"text": map[string]interface{}{
								"type":        "string",
								"description": "Word text, split into one symbol per character",
							},
							"symbols": map[string]interface{}{
								"type":        "array",
								"description": "Recognized symbols in reading order",
								"items":       map[string]interface{}{"type": "string"},
							},
						}),
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				},
			}, "words"),
		},
		{
			Name:        "overlay_ocr_words",
			Description: "Run Tesseract OCR on an image and render every recognized word as an outlined box with its text. Returns a base64-encoded PNG.",
			InputSchema: overlaySchema(map[string]interface{}{
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Tesseract language code. Defaults to the server's configured language",
				},
				"min_confidence": map[string]interface{}{
					"type":        "number",
					"description": "Skip words recognized with confidence below this value (0-1). Default 0",
					"default":     0.0,
				},
				"region": map[string]interface{}{
					"type":        "string",
					"description": "Only recognize text in this part of the image. Default full",
					"enum":        imaging.RegionNames,
					"default":     "full",
				},
			}),
		},
		{
			Name:        "overlay_labels",
			Description: "Render a stack of classification labels over an image, one translucent bar per label, starting a quarter of the way into the frame and stacking upward. Returns a base64-encoded PNG.",
			InputSchema: overlaySchema(map[string]interface{}{
				"labels": map[string]interface{}{
					"type":        "array",
					"description": "Labels in draw order",
					"items":       map[string]interface{}{"type": "string"},
				},
				"auto_count": intProperty("When labels is empty, label the image with this many of its dominant colors"),
			}),
		},
		{
			Name:        "overlay_detections",
			Description: "Render detected objects over an image as boxes with a caption sized to fit each box. Returns a base64-encoded PNG.",
			InputSchema: overlaySchema(map[string]interface{}{
				"detections": map[string]interface{}{
					"type":        "array",
					"description": "Detections in source pixel coordinates",
					"items": map[string]interface{}{
						"type": "object",
						"properties": boxProperties(map[string]interface{}{
							"text": map[string]interface{}{
								"type":        "string",
								"description": "Caption, e.g. \"cat 87%\". Omit to draw only the box",
							},
						}),
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				},
			}, "detections"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
