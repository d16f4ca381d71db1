package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"

	"github.com/rooshmintted/menu-annotate/internal/annotate"
	"github.com/rooshmintted/menu-annotate/internal/imaging"
	"github.com/rooshmintted/menu-annotate/internal/layout"
	"github.com/rooshmintted/menu-annotate/internal/match"
	"github.com/rooshmintted/menu-annotate/internal/menu"
	"github.com/rooshmintted/menu-annotate/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "menu_annotate").
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
	switch name {
	case "menu_annotate":
		return s.handleMenuAnnotate(args)
	case "menu_detect_text":
		return s.handleMenuDetectText(args)
	case "menu_score":
		return s.handleMenuScore(args)
	case "menu_match_dishes":
		return s.handleMenuMatchDishes(args)
	case "menu_display_geometry":
		return s.handleMenuDisplayGeometry(args)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// loadImage resolves the tool image input: a file path (cached across calls)
// or inline base64 bytes. Exactly one must be provided.
func (s *Server) loadImage(path, imageBase64 string) (image.Image, error) {
	switch {
	case path != "" && imageBase64 != "":
		return nil, fmt.Errorf("provide either path or image_base64, not both")
	case path != "":
		return s.cache.Load(path)
	case imageBase64 != "":
		data, err := decodeBase64(imageBase64)
		if err != nil {
			return nil, fmt.Errorf("invalid image_base64: %w", err)
		}
		return imaging.DecodeBytes(data)
	default:
		return nil, fmt.Errorf("path or image_base64 is required")
	}
}

// detectorFor returns the server's detector, or a fresh one when the call
// overrides the configured OCR language.
func (s *Server) detectorFor(language string) *ocr.Detector {
	if language == "" || language == s.cfg.Language {
		return s.detector
	}
	return ocr.NewDetector(ocr.NewTesseractRecognizer(language))
}

// === Annotation Pipeline ===

type menuAnnotateArgs struct {
	Path        string          `json:"path"`
	ImageBase64 string          `json:"image_base64"`
	Dishes      json.RawMessage `json:"dishes"`
	Orientation int             `json:"orientation"`
	Language    string          `json:"language"`
	MaxWidth    float64         `json:"max_width"`
	MaxHeight   float64         `json:"max_height"`
	Exclusive   *bool           `json:"exclusive"`
}

// AnnotateResult is the menu_annotate tool response.
type AnnotateResult struct {
	ImageBase64     string                 `json:"image_base64"`
	MimeType        string                 `json:"mime_type"`
	Geometry        layout.DisplayGeometry `json:"geometry"`
	RequestedDishes int                    `json:"requested_dishes"`
	AnnotatedDishes int                    `json:"annotated_dishes"`
	Matches         []MatchSummary         `json:"matches"`
}

// MatchSummary is the per-dish slice of an annotation result, without the
// full dish record.
type MatchSummary struct {
	DishID   string      `json:"dish_id"`
	DishName string      `json:"dish_name"`
	Text     string      `json:"text"`
	Score    float64     `json:"score"`
	Bounds   layout.Rect `json:"bounds"`
}

func (s *Server) handleMenuAnnotate(args json.RawMessage) (interface{}, error) {
	var a menuAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.loadImage(a.Path, a.ImageBase64)
	if err != nil {
		return nil, err
	}

	dishes, err := menu.LoadDishes(a.Dishes)
	if err != nil {
		return nil, err
	}

	if a.MaxWidth == 0 {
		a.MaxWidth = s.cfg.MaxDisplayWidth
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = s.cfg.MaxDisplayHeight
	}
	exclusive := s.cfg.ExclusiveMatch
	if a.Exclusive != nil {
		exclusive = *a.Exclusive
	}

	engine := s.engine
	if a.Language != "" && a.Language != s.cfg.Language {
		engine = annotate.NewEngineWithRenderer(s.detectorFor(a.Language), s.renderer)
	}

	result, err := engine.Annotate(context.Background(), annotate.Request{
		Image:            img,
		Orientation:      imaging.Orientation(a.Orientation),
		Dishes:           dishes,
		MaxDisplayWidth:  a.MaxWidth,
		MaxDisplayHeight: a.MaxHeight,
		ExclusiveMatch:   exclusive,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]MatchSummary, len(result.Matches))
	for i, m := range result.Matches {
		summaries[i] = MatchSummary{
			DishID:   m.Dish.ID,
			DishName: m.Dish.Name,
			Text:     m.Region.Text,
			Score:    m.Score,
			Bounds:   result.Geometry.ScaleRect(m.Region.Bounds),
		}
	}

	return &AnnotateResult{
		ImageBase64:     encodeBase64(result.PNG),
		MimeType:        "image/png",
		Geometry:        result.Geometry,
		RequestedDishes: result.RequestedDishes,
		AnnotatedDishes: result.AnnotatedDishes,
		Matches:         summaries,
	}, nil
}

// === Detector Debugging ===

type menuDetectTextArgs struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
	Orientation int    `json:"orientation"`
	Language    string `json:"language"`
}

// DetectTextResult is the menu_detect_text tool response. Regions are in
// pixel space of the oriented image.
type DetectTextResult struct {
	Regions []ocr.Region `json:"regions"`
	Count   int          `json:"count"`
}

func (s *Server) handleMenuDetectText(args json.RawMessage) (interface{}, error) {
	var a menuDetectTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.loadImage(a.Path, a.ImageBase64)
	if err != nil {
		return nil, err
	}

	regions, err := s.detectorFor(a.Language).Detect(context.Background(), img, imaging.Orientation(a.Orientation))
	if err != nil {
		return nil, err
	}

	return &DetectTextResult{Regions: regions, Count: len(regions)}, nil
}

// === Matching ===

type menuScoreArgs struct {
	DishName     string `json:"dish_name"`
	DetectedText string `json:"detected_text"`
}

// ScoreResult is the menu_score tool response.
type ScoreResult struct {
	Score   float64 `json:"score"`
	Matches bool    `json:"matches"`
}

func (s *Server) handleMenuScore(args json.RawMessage) (interface{}, error) {
	var a menuScoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	score := match.Score(a.DishName, a.DetectedText)
	return &ScoreResult{Score: score, Matches: score > match.Threshold}, nil
}

type menuMatchDishesArgs struct {
	Dishes    json.RawMessage `json:"dishes"`
	Regions   []ocr.Region    `json:"regions"`
	Exclusive bool            `json:"exclusive"`
}

// MatchDishesResult is the menu_match_dishes tool response.
type MatchDishesResult struct {
	Matches   []match.Match `json:"matches"`
	Requested int           `json:"requested"`
	Matched   int           `json:"matched"`
}

func (s *Server) handleMenuMatchDishes(args json.RawMessage) (interface{}, error) {
	var a menuMatchDishesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	dishes, err := menu.LoadDishes(a.Dishes)
	if err != nil {
		return nil, err
	}

	var matches []match.Match
	if a.Exclusive {
		matches = match.Exclusive(dishes, a.Regions)
	} else {
		matches = match.All(dishes, a.Regions)
	}

	return &MatchDishesResult{
		Matches:   matches,
		Requested: len(dishes),
		Matched:   len(matches),
	}, nil
}

// === Geometry ===

type menuDisplayGeometryArgs struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MaxWidth  float64 `json:"max_width"`
	MaxHeight float64 `json:"max_height"`
}

func (s *Server) handleMenuDisplayGeometry(args json.RawMessage) (interface{}, error) {
	var a menuDisplayGeometryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width <= 0 || a.Height <= 0 {
		return nil, fmt.Errorf("width and height must be positive")
	}
	if a.MaxWidth == 0 {
		a.MaxWidth = s.cfg.MaxDisplayWidth
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = s.cfg.MaxDisplayHeight
	}
	geom := layout.FitDisplay(layout.Size{Width: a.Width, Height: a.Height}, a.MaxWidth, a.MaxHeight)
	return &geom, nil
}
