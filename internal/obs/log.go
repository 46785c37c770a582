package obs

import (
	"io"
	"log/slog"
)

// NewLogger builds the JSON structured logger used across the CLI.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
