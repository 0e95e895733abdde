package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/blend-modes-mcp/internal/blend"
	"github.com/ironsheep/blend-modes-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "blend_apply", "image_info").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate blend/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Blending
	case "blend_apply":
		return s.handleBlendApply(args)
	case "blend_modes":
		return s.handleBlendModes(args)

	// Validation
	case "blend_compare":
		return s.handleBlendCompare(args)
	case "blend_generate_stripes":
		return s.handleBlendGenerateStripes(args)

	// Image Information
	case "image_info":
		return s.handleImageInfo(args)

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

// === Blending Handlers ===

type blendApplyArgs struct {
	BasePath    string   `json:"base_path"`
	OverlayPath string   `json:"overlay_path"`
	Mode        string   `json:"mode"`
	Opacity     *float64 `json:"opacity"`
	OutputPath  string   `json:"output_path"`
	ReturnImage bool     `json:"return_image"`
}

// BlendApplyResult reports a completed blend. OutputPath is set when the
// result was saved to disk, Image when it was returned inline.
type BlendApplyResult struct {
	Mode       string                `json:"mode"`
	Opacity    float64               `json:"opacity"`
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	OutputPath string                `json:"output_path,omitempty"`
	Image      *imaging.RenderResult `json:"image,omitempty"`
}

func (s *Server) handleBlendApply(args json.RawMessage) (interface{}, error) {
	var a blendApplyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opacity := 1.0
	if a.Opacity != nil {
		opacity = blend.ClampOpacity(*a.Opacity)
	}
	if a.OutputPath == "" && !a.ReturnImage {
		return nil, fmt.Errorf("set output_path, return_image, or both")
	}

	out, mode, err := imaging.BlendFiles(s.cache, a.BasePath, a.OverlayPath, a.Mode, opacity)
	if err != nil {
		return nil, err
	}

	bounds := out.Bounds()
	result := &BlendApplyResult{
		Mode:    mode.String(),
		Opacity: opacity,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
	}
	if a.OutputPath != "" {
		if err := imaging.SaveImage(out, a.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
	}
	if a.ReturnImage {
		rendered, err := imaging.EncodePNGBase64(out)
		if err != nil {
			return nil, err
		}
		result.Image = rendered
	}
	return result, nil
}

// ModeInfo describes one blend mode in a blend_modes listing.
type ModeInfo struct {
	Name string `json:"name"`

	// Separable is true for modes that treat each channel independently.
	Separable bool `json:"separable"`
}

// ModesResult is the blend_modes tool response.
type ModesResult struct {
	Modes []ModeInfo `json:"modes"`
	Count int        `json:"count"`
}

func (s *Server) handleBlendModes(args json.RawMessage) (interface{}, error) {
	modes := blend.Modes()
	result := &ModesResult{
		Modes: make([]ModeInfo, len(modes)),
		Count: len(modes),
	}
	for i, m := range modes {
		result.Modes[i] = ModeInfo{Name: m.String(), Separable: m.Separable()}
	}
	return result, nil
}

// === Validation Handlers ===

type blendCompareArgs struct {
	PathA string `json:"path_a"`
	PathB string `json:"path_b"`
}

func (s *Server) handleBlendCompare(args json.RawMessage) (interface{}, error) {
	var a blendCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.CompareFiles(s.cache, a.PathA, a.PathB)
}

type blendGenerateStripesArgs struct {
	OutputPath  string `json:"output_path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Stripes     int    `json:"stripes"`
	Orientation string `json:"orientation"`
}

// GenerateStripesResult reports a generated stripe test image.
type GenerateStripesResult struct {
	OutputPath  string `json:"output_path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Stripes     int    `json:"stripes"`
	Orientation string `json:"orientation"`
}

func (s *Server) handleBlendGenerateStripes(args json.RawMessage) (interface{}, error) {
	var a blendGenerateStripesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}
	if a.Width == 0 {
		a.Width = 600
	}
	if a.Height == 0 {
		a.Height = 600
	}
	if a.Stripes == 0 {
		a.Stripes = 6
	}
	if a.Orientation == "" {
		a.Orientation = "horizontal"
	}

	img, err := imaging.GenerateStripes(a.Width, a.Height, a.Stripes, a.Orientation)
	if err != nil {
		return nil, err
	}
	if err := imaging.SaveImage(img, a.OutputPath); err != nil {
		return nil, err
	}

	return &GenerateStripesResult{
		OutputPath:  a.OutputPath,
		Width:       a.Width,
		Height:      a.Height,
		Stripes:     a.Stripes,
		Orientation: a.Orientation,
	}, nil
}

// === Image Information Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}
