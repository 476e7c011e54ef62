// Package cli implements the image-ascii command-line interface.
//
// The CLI converts images to two-tone ASCII art and run-length encodings,
// decodes run-length text back into art, and hosts the HTTP and MCP servers.
// It is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - convert: Render an image file as ASCII art, RLE or JSON
//   - decode: Rebuild ASCII art from RLE text
//   - info: Show image dimensions and format
//   - serve: Run the HTTP API
//   - mcp: Run the MCP stdio server
//
// # Logging
//
// Logs go to stderr so that stdout stays clean for command output and the MCP
// protocol. --verbose (-v) enables debug logging; otherwise the level comes
// from the config file or IMAGE_ASCII_LOG_LEVEL. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Converted photo.png to 20x40 (12ms)"
func (p *progress) done(msg string, keyvals ...interface{}) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
