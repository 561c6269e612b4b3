package logger

import "log/slog"

// NewNope creates a logger that discards everything.
// It is the default for library code when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
