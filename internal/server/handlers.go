package server

import (
	"encoding/json"
	"fmt"

	"github.com/ballotink/markcheck/internal/ink"
	"github.com/ballotink/markcheck/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mark_load", "mark_validate").
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
	case "mark_load":
		return s.handleMarkLoad(args)
	case "mark_validate":
		return s.handleMarkValidate(args)
	case "mark_render":
		return s.handleMarkRender(args)
	case "config_show":
		return s.validator.Config(), nil
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

// === Tool Handlers ===

type markLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleMarkLoad(args json.RawMessage) (interface{}, error) {
	var a markLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	m, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return m.Info(), nil
}

type markValidateArgs struct {
	Path    string       `json:"path"`
	Strokes []ink.Stroke `json:"strokes"`
	Debug   bool         `json:"debug"`
}

func (s *Server) handleMarkValidate(args json.RawMessage) (interface{}, error) {
	var a markValidateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	strokes := a.Strokes
	if a.Path != "" {
		if len(strokes) > 0 {
			return nil, fmt.Errorf("pass either a path or inline strokes, not both")
		}
		m, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		strokes = m.Strokes
	}

	return s.validator.Validate(strokes, a.Debug), nil
}

type markRenderArgs struct {
	Path    string  `json:"path"`
	Scale   float64 `json:"scale"`
	Overlay *bool   `json:"overlay"`
}

func (s *Server) handleMarkRender(args json.RawMessage) (interface{}, error) {
	var a markRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	overlay := true
	if a.Overlay != nil {
		overlay = *a.Overlay
	}

	m, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// The overlay reuses the classifier's debug output; rendering never
	// feeds back into classification.
	result := s.validator.Validate(m.Strokes, true)

	return render.Render(s.validator.Config().Box(), m.Strokes, result.Debug, render.Options{
		Scale:   a.Scale,
		Overlay: overlay,
	})
}
