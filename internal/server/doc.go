// Package server implements the MCP (Model Context Protocol) server for
// ASCII image conversion.
//
// This package provides a JSON-RPC 2.0 server that exposes the converter
// through the MCP protocol, so MCP-compatible clients can turn images into
// ASCII art and run-length encodings without going through HTTP.
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
// Conversion:
//   - image_ascii: Convert a file or data URI to ASCII art and RLE, optionally
//     cropping a region first
//   - image_rle_decode: Rebuild ASCII art from run lengths and first symbols
//
// Image Information:
//   - image_load: Get width, height and format of an image file
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: {"code": "<ERROR_CODE>", "detail": "<message>"} for tool failures
//
// The server keeps no state between calls; every tool call reads its input
// afresh.
//
// # Usage
//
// The server is typically started by an MCP client through the CLI:
//
//	image-ascii mcp
//
// or embedded directly:
//
//	srv := server.New(ascii.DefaultConfig(), logger, version)
//	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal(err)
//	}
package server
