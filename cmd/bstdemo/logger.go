package main

import (
	"io"
	"log/slog"
	"os"
)

// logger discards everything until initLogging enables it.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func initLogging(verbose bool) {
	if !verbose {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
