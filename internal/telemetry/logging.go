// Package telemetry wires up forge's ambient observability stack: a
// rotating, structured log handler and an OTLP/gRPC trace exporter,
// following the same patterns the teacher codebase uses for its own
// daemon logging and container-service tracing.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging installs the default slog logger: a JSON handler at the
// requested level, writing to stderr when logFile is empty or to a
// lumberjack-rotated file otherwise.
func InitLogging(logFile, level string) error {
	var w io.Writer = os.Stderr
	if logFile != "" {
		w = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
