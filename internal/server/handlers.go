package server

import (
	"encoding/json"

	"github.com/ironsheep/image-ascii/internal/ascii"
	apperr "github.com/ironsheep/image-ascii/internal/errors"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_ascii", "image_load").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ToolErrorData is attached to the JSON-RPC error of a failed tool call.
type ToolErrorData struct {
	// Code is the machine-readable error code, e.g. "INVALID_DIMENSIONS".
	Code apperr.Code `json:"code"`

	// Detail is the error message without the code prefix.
	Detail string `json:"detail"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000
// and a ToolErrorData payload.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		code := apperr.GetCode(err)
		s.logger.Warn("tool call failed", "tool", params.Name, "code", code, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", ToolErrorData{
			Code:   code,
			Detail: apperr.UserMessage(err),
		})
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
	case "image_ascii":
		return s.handleImageASCII(args)
	case "image_rle_decode":
		return s.handleImageRLEDecode(args)
	case "image_load":
		return s.handleImageLoad(args)
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message string, data interface{}) *MCPResponse {
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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidRequest, err, "invalid arguments")
	}
	return nil
}

// === Conversion ===

type imageASCIIArgs struct {
	Path   string          `json:"path"`
	Image  string          `json:"image"`
	Rows   interface{}     `json:"rows"`
	Cols   interface{}     `json:"cols"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageASCII(args json.RawMessage) (interface{}, error) {
	var a imageASCIIArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	rows, err := ascii.ParseDimension("rows", a.Rows, s.conv.MaxDimension)
	if err != nil {
		return nil, err
	}
	cols, err := ascii.ParseDimension("cols", a.Cols, s.conv.MaxDimension)
	if err != nil {
		return nil, err
	}

	data, err := s.loadSource(a.Path, a.Image)
	if err != nil {
		return nil, err
	}

	if a.Region == nil {
		return ascii.Convert(data, rows, cols, s.conv)
	}

	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "failed to decode image")
	}
	cropped, err := imaging.Crop(img, *a.Region)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidRequest, err, "invalid region")
	}
	return ascii.ConvertImage(cropped, rows, cols, s.conv)
}

// loadSource returns the encoded image named by exactly one of path or
// dataURI.
func (s *Server) loadSource(path, dataURI string) ([]byte, error) {
	switch {
	case path != "" && dataURI != "":
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "path and image are mutually exclusive")
	case path != "":
		data, err := imaging.LoadFile(path)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "failed to load %s", path)
		}
		return data, nil
	case dataURI != "":
		data, err := imaging.DecodeDataURI(dataURI)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "invalid image payload")
		}
		return data, nil
	default:
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "one of path or image is required")
	}
}

// === RLE Decoding ===

type imageRLEDecodeArgs struct {
	RLE   string `json:"rle"`
	First string `json:"first"`
}

// RLEDecodeResult is the output of image_rle_decode.
type RLEDecodeResult struct {
	ASCII string `json:"ascii"`
	Rows  int    `json:"rows"`
}

func (s *Server) handleImageRLEDecode(args json.RawMessage) (interface{}, error) {
	var a imageRLEDecodeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	firsts := []rune(a.First)
	if len(firsts) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "first is required")
	}

	alpha, err := s.conv.Alphabet()
	if err != nil {
		return nil, err
	}
	runs, err := ascii.ParseRLE(a.RLE)
	if err != nil {
		return nil, err
	}
	grid, err := ascii.DecodeRLE(runs, firsts, alpha)
	if err != nil {
		return nil, err
	}
	return &RLEDecodeResult{ASCII: grid.String(), Rows: len(grid)}, nil
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "path is required")
	}

	data, err := imaging.LoadFile(a.Path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "failed to load %s", a.Path)
	}
	info, err := imaging.Info(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "failed to read %s", a.Path)
	}
	return info, nil
}
