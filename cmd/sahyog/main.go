package main

import (
	"log/slog"
	"os"

	"github.com/sahyog-app/sahyog/internal/cmd"
	"github.com/sahyog-app/sahyog/internal/obs"
)

func main() {
	// Logs go to stderr; stdout is reserved for command output.
	logger := obs.NewLogger(os.Stderr, slog.LevelInfo)
	slog.SetDefault(logger)

	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
