package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"menu_annotate",
		"menu_detect_text",
		"menu_score",
		"menu_match_dishes",
		"menu_display_geometry",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_AnnotateRequiresDishes(t *testing.T) {
	tools := GetToolDefinitions()

	var annotateTool Tool
	for _, tool := range tools {
		if tool.Name == "menu_annotate" {
			annotateTool = tool
			break
		}
	}

	if annotateTool.Name == "" {
		t.Fatal("menu_annotate tool not found")
	}

	required, ok := annotateTool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}

	hasDishes := false
	for _, r := range required {
		if r == "dishes" {
			hasDishes = true
			break
		}
	}
	if !hasDishes {
		t.Error("menu_annotate should require 'dishes' parameter")
	}

	// path is intentionally optional: the caller may send image_base64 instead
	for _, r := range required {
		if r == "path" {
			t.Error("menu_annotate should not require 'path'")
		}
	}
}

func TestToolDefinitions_ScoreRequiresBothTexts(t *testing.T) {
	tools := GetToolDefinitions()

	var scoreTool Tool
	for _, tool := range tools {
		if tool.Name == "menu_score" {
			scoreTool = tool
			break
		}
	}

	if scoreTool.Name == "" {
		t.Fatal("menu_score tool not found")
	}

	required, ok := scoreTool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}

	expected := map[string]bool{
		"dish_name":     true,
		"detected_text": true,
	}
	for _, r := range required {
		delete(expected, r)
	}
	for missing := range expected {
		t.Errorf("menu_score should require '%s' parameter", missing)
	}
}

func TestToolDefinitions_GeometryRequiresDimensions(t *testing.T) {
	tools := GetToolDefinitions()

	var geomTool Tool
	for _, tool := range tools {
		if tool.Name == "menu_display_geometry" {
			geomTool = tool
			break
		}
	}

	if geomTool.Name == "" {
		t.Fatal("menu_display_geometry tool not found")
	}

	required, ok := geomTool.InputSchema["required"].([]string)
	if !ok {
		t.Fatal("required should be a string slice")
	}

	expected := map[string]bool{
		"width":  true,
		"height": true,
	}
	for _, r := range required {
		delete(expected, r)
	}
	for missing := range expected {
		t.Errorf("menu_display_geometry should require '%s' parameter", missing)
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(testConfig())
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

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

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
