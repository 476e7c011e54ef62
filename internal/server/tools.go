package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// dimensionSchema accepts a positive integer given as a number or a string.
func dimensionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        []string{"integer", "string"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name: "image_ascii",
			Description: "Downsample an image to a rows x cols grid and render it as two-tone ASCII art " +
				"('#' for dark cells, '.' for light cells) together with a per-row run-length encoding. " +
				"Provide exactly one of path or image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"image": map[string]interface{}{
						"type":        "string",
						"description": "Image as a data URI (data:image/png;base64,...)",
					},
					"rows": dimensionSchema("Number of output rows (positive integer)"),
					"cols": dimensionSchema("Number of output columns (positive integer)"),
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
							"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
							"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
							"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
						},
						"required":    []string{"x1", "y1", "x2", "y2"},
						"description": "Optional region to crop before downsampling. If omitted, converts the entire image.",
					},
				},
				"required": []string{"rows", "cols"},
			},
		},
		{
			Name: "image_rle_decode",
			Description: "Rebuild ASCII art from its run-length encoding. Runs alternate between '#' and '.', " +
				"starting with the given first symbol.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"rle": map[string]interface{}{
						"type":        "string",
						"description": "Run lengths joined by '-', one row per line",
					},
					"first": map[string]interface{}{
						"type":        "string",
						"description": "First symbol of every row, either one symbol for all rows or one per row (e.g. \"#.#\")",
					},
				},
				"required": []string{"rle", "first"},
			},
		},

		// Image Information
		{
			Name:        "image_load",
			Description: "Read an image file header and return its dimensions, format and size in bytes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
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
