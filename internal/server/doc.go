// Package server implements the MCP (Model Context Protocol) server for menu annotation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the menu annotation
// pipeline through the MCP protocol. It's designed to work with MCP-compatible
// clients, letting them badge menu photos with dish margin information.
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
// Annotation Pipeline:
//   - menu_annotate: Detect, match, and render margin badges onto a menu photo
//
// Detector Debugging:
//   - menu_detect_text: Detect text regions without matching or rendering
//
// Matching:
//   - menu_score: Score one dish name against one piece of detected text
//   - menu_match_dishes: Match dishes against pre-detected regions
//
// Geometry:
//   - menu_display_geometry: Compute display size and scale factors for an image
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process. Inline base64
// images are decoded per call and never cached.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
