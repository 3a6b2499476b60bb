// Package server implements the MCP (Model Context Protocol) server that
// renders vision results over images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Source Images:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_color_labels: Describe dominant colors as labels
//
// Overlays:
//   - overlay_words: Outline recognized words and draw their text
//   - overlay_ocr_words: Run OCR and overlay every word found
//   - overlay_labels: Stack classification labels
//   - overlay_detections: Box detected objects with fitted captions
//
// Overlay tools take coordinates in source image pixels. Each call builds a
// fresh overlay sized to the requested viewport, maps the coordinates onto it,
// draws every graphic over the resized source image and returns the frame as
// a base64-encoded PNG.
//
// # Image Caching
//
// Decoded source images are cached by path for the lifetime of the server
// process, so repeated overlays of one image decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// A graphic that cannot draw, such as a word entry given as null, aborts the
// whole frame and is reported as a tool error naming the graphic's index.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
