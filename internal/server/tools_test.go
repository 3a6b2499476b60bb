package server

import (
	"encoding/json"
	"testing"
)

func toolByName(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %s not found", name)
	return Tool{}
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"image_color_labels",
		"overlay_words",
		"overlay_ocr_words",
		"overlay_labels",
		"overlay_detections",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			// Every required parameter must be declared.
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s is not a property", r)
				}
			}

			if _, err := json.Marshal(tool); err != nil {
				t.Errorf("tool does not marshal: %v", err)
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			required := tool.InputSchema["required"].([]string)
			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
					break
				}
			}
			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_OverlayViewport(t *testing.T) {
	for _, name := range []string{"overlay_words", "overlay_ocr_words", "overlay_labels", "overlay_detections"} {
		t.Run(name, func(t *testing.T) {
			props := toolByName(t, name).InputSchema["properties"].(map[string]interface{})
			for _, p := range []string{"viewport_width", "viewport_height", "dim"} {
				if _, ok := props[p]; !ok {
					t.Errorf("missing %s property", p)
				}
			}
		})
	}
}

func TestToolDefinitions_BoxItems(t *testing.T) {
	tests := []struct {
		tool  string
		array string
	}{
		{"overlay_words", "words"},
		{"overlay_detections", "detections"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			props := toolByName(t, tt.tool).InputSchema["properties"].(map[string]interface{})
			array, ok := props[tt.array].(map[string]interface{})
			if !ok {
				t.Fatalf("%s property should be a map", tt.array)
			}
			items, ok := array["items"].(map[string]interface{})
			if !ok {
				t.Fatal("items should be a map")
			}
			required := items["required"].([]string)
			expected := map[string]bool{"x1": true, "y1": true, "x2": true, "y2": true}
			for _, r := range required {
				delete(expected, r)
			}
			for missing := range expected {
				t.Errorf("items should require '%s'", missing)
			}
		})
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"image_color_labels": {"count": 5},
		"overlay_words":      {"dim": 0.0},
		"overlay_ocr_words":  {"dim": 0.0, "min_confidence": 0.0, "region": "full"},
		"overlay_labels":     {"dim": 0.0},
	}

	for toolName, expectedDefaults := range toolDefaults {
		props := toolByName(t, toolName).InputSchema["properties"].(map[string]interface{})
		for paramName, expected := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}
			if param["default"] != expected {
				t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, param["default"], expected)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(nil)
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 1})

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
