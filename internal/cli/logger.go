// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"
	"log/slog"
)

// SetupLogger installs a text slog handler writing to w as the default
// logger, at debug level when verbose is set.
func SetupLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	return logger
}
