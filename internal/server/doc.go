// Package server exposes the blend engine over MCP (Model Context
// Protocol), so Claude and other MCP clients can composite images with
// Photoshop-style blend modes.
//
// # Protocol
//
// The server speaks line-delimited JSON-RPC 2.0 over stdio: one request
// per line on stdin, one response per line on stdout. Logging goes to
// stderr only.
//
// Supported methods:
//   - initialize: protocol handshake
//   - notifications/initialized: client acknowledgment (no response)
//   - tools/list: enumerate the tools
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// # Tools
//
// Blending:
//   - blend_apply: blend an overlay onto a base image with a named mode
//     and opacity, saving to disk or returning base64 PNG
//   - blend_modes: list the supported blend modes
//
// Validation:
//   - blend_compare: pixel-difference metrics between two images
//   - blend_generate_stripes: render a rainbow stripe test image
//
// Image information:
//   - image_info: load an image and report its metadata
//
// # Caching
//
// The server keeps decoded images cached by path for its lifetime, so
// blending one base against a series of overlays decodes the base once.
//
// # Errors
//
// Tool failures come back as JSON-RPC errors with code -32000 and the Go
// error string as data; unknown methods get -32601 and malformed
// tools/call parameters -32602. Unparseable input lines are logged and
// dropped rather than killing the session.
//
// # Usage
//
// An MCP client launches the binary and drives it over stdio:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
