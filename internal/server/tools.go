package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Annotation Pipeline
		{
			Name:        "menu_annotate",
			Description: "Run the full annotation pipeline on a menu photo: detect text regions, match the supplied dishes against them, and render margin badges onto a display-sized copy of the image. Returns the annotated image as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the menu image file",
					},
					"image_base64": map[string]interface{}{
						"type":        "string",
						"description": "Inline base64-encoded image bytes. Provide either path or image_base64, not both.",
					},
					"dishes": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"id":                map[string]interface{}{"type": "string", "description": "Optional stable identifier. Generated when omitted."},
								"name":              map[string]interface{}{"type": "string", "description": "Dish name as printed on the menu"},
								"price":             map[string]interface{}{"type": "string"},
								"estimated_cost":    map[string]interface{}{"type": "number"},
								"margin_percentage": map[string]interface{}{"type": "integer", "description": "Profit margin percent, clamped to 0-100"},
								"justification":     map[string]interface{}{"type": "string", "description": "Optional explanation rendered below the matched region"},
							},
							"required": []string{"name", "margin_percentage"},
						},
						"description": "Dishes to locate and badge on the menu",
					},
					"orientation": map[string]interface{}{
						"type":        "integer",
						"description": "EXIF orientation of the photo (1-8). Default 1 (upright).",
						"default":     1,
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint. Defaults to the configured language.",
					},
					"max_width": map[string]interface{}{
						"type":        "number",
						"description": "Display width limit in points. Defaults to the configured display size.",
					},
					"max_height": map[string]interface{}{
						"type":        "number",
						"description": "Display height limit in points. Defaults to the configured display size.",
					},
					"exclusive": map[string]interface{}{
						"type":        "boolean",
						"description": "When true, each text region is claimed by at most one dish. Defaults to the configured matching mode.",
					},
				},
				"required": []string{"dishes"},
			},
		},

		// Detector Debugging
		{
			Name:        "menu_detect_text",
			Description: "Detect text regions in a menu photo without matching or rendering. Returns recognized text with pixel-space bounding boxes on the oriented image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the menu image file",
					},
					"image_base64": map[string]interface{}{
						"type":        "string",
						"description": "Inline base64-encoded image bytes. Provide either path or image_base64, not both.",
					},
					"orientation": map[string]interface{}{
						"type":        "integer",
						"description": "EXIF orientation of the photo (1-8). Default 1 (upright).",
						"default":     1,
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint. Defaults to the configured language.",
					},
				},
			},
		},

		// Matching
		{
			Name:        "menu_score",
			Description: "Score how well a dish name matches a piece of detected text (0.0 to 1.0). A match requires a score strictly above 0.6.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dish_name": map[string]interface{}{
						"type":        "string",
						"description": "Dish name to look for",
					},
					"detected_text": map[string]interface{}{
						"type":        "string",
						"description": "Text recognized from the menu photo",
					},
				},
				"required": []string{"dish_name", "detected_text"},
			},
		},
		{
			Name:        "menu_match_dishes",
			Description: "Match a list of dishes against pre-detected text regions without rendering. Useful for inspecting match decisions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dishes": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "object"},
						"description": "Dishes to match, same shape as menu_annotate",
					},
					"regions": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"text": map[string]interface{}{"type": "string"},
								"bounds": map[string]interface{}{
									"type": "object",
									"properties": map[string]interface{}{
										"x":      map[string]interface{}{"type": "number"},
										"y":      map[string]interface{}{"type": "number"},
										"width":  map[string]interface{}{"type": "number"},
										"height": map[string]interface{}{"type": "number"},
									},
								},
								"confidence": map[string]interface{}{"type": "number"},
							},
							"required": []string{"text"},
						},
						"description": "Detected text regions, e.g. from menu_detect_text",
					},
					"exclusive": map[string]interface{}{
						"type":        "boolean",
						"description": "When true, each region is claimed by at most one dish",
						"default":     false,
					},
				},
				"required": []string{"dishes", "regions"},
			},
		},

		// Geometry
		{
			Name:        "menu_display_geometry",
			Description: "Compute the display size and scale factors for an image, preserving aspect ratio and never upscaling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Original image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "Original image height in pixels",
					},
					"max_width": map[string]interface{}{
						"type":        "number",
						"description": "Display width limit. Defaults to the configured display size.",
					},
					"max_height": map[string]interface{}{
						"type":        "number",
						"description": "Display height limit. Defaults to the configured display size.",
					},
				},
				"required": []string{"width", "height"},
			},
		},
	}
}
