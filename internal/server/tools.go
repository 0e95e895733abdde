package server

import (
	"github.com/ironsheep/blend-modes-mcp/internal/blend"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Blending
		{
			Name:        "blend_apply",
			Description: "Blend an overlay image onto a base image using a Photoshop-style blend mode. Writes the result to output_path, returns it inline as base64 PNG, or both.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the base (bottom layer) image file",
					},
					"overlay_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the overlay (top layer) image file. Must match the base dimensions.",
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        blend.ModeNames(),
						"description": "Blend mode name. Case-insensitive; spaces, hyphens and underscores are interchangeable ('soft light', 'soft-light', 'soft_light').",
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Overlay opacity from 0.0 (base only) to 1.0 (full effect). Default 1.0",
						"default":     1.0,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to save the blended image. Extension picks the encoder (png, jpg, gif, tif, bmp).",
					},
					"return_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to return the result inline as base64-encoded PNG",
						"default":     false,
					},
				},
				"required": []string{"base_path", "overlay_path", "mode"},
			},
		},
		{
			Name:        "blend_modes",
			Description: "List all supported blend modes, grouped into separable (per-channel) and non-separable (whole-pixel) modes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Validation
		{
			Name:        "blend_compare",
			Description: "Compare two same-sized images pixel by pixel. Returns the sum of absolute errors and related difference metrics, for validating a blend result against a reference render.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path_a": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first image file",
					},
					"path_b": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second image file",
					},
				},
				"required": []string{"path_a", "path_b"},
			},
		},
		{
			Name:        "blend_generate_stripes",
			Description: "Generate a rainbow stripe test image. A horizontal and a vertical render of the same size blended together exercise a mode against every hue pairing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to save the generated image",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels (default 600)",
						"default":     600,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels (default 600)",
						"default":     600,
					},
					"stripes": map[string]interface{}{
						"type":        "integer",
						"description": "Number of stripes (default 6)",
						"default":     6,
					},
					"orientation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Stripe orientation (default horizontal)",
						"default":     "horizontal",
					},
				},
				"required": []string{"output_path"},
			},
		},

		// Image Information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, color depth, and file size.",
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
