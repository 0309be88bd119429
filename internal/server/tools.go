package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// strokesSchema describes inline strokes: an array of strokes, each an
// array of [x, y] points.
var strokesSchema = map[string]interface{}{
	"type":        "array",
	"description": "Strokes as arrays of [x,y] points in logical coordinates",
	"items": map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type":     "array",
			"items":    map[string]interface{}{"type": "number"},
			"minItems": 2,
			"maxItems": 2,
		},
	},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "mark_load",
			Description: "Load a mark file (recorded strokes) and return stroke count, point count, total ink length, and bounds. Caches the file for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mark JSON file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mark_validate",
			Description: "Classify a mark as a valid cross or one of the invalid categories (blank, outside_box, no_cross, multi_mark, intentional, wrong_symbol, extra_writing). Accepts a mark file path or inline strokes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mark JSON file (omit when passing strokes inline)",
					},
					"strokes": strokesSchema,
					"debug": map[string]interface{}{
						"type":        "boolean",
						"description": "Include intermediate pipeline artifacts (intersections, clusters, candidates) in the result",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "mark_render",
			Description: "Render a diagnostic snapshot of a mark as base64-encoded PNG, optionally with the classifier's overlay (cluster dots, chosen candidate crosshair).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the mark JSON file",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
					"overlay": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the classifier's debug artifacts on top of the ink",
						"default":     true,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "config_show",
			Description: "Return the active calibration (thresholds, bounding box, separation ratios) as JSON.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
