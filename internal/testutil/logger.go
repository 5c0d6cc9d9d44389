package testutil

import (
	"io"
	"log/slog"

	"github.com/acmedash/invoicer-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything. Service and
// handler tests pass it wherever wiring demands a logger.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
