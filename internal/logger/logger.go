package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string
	Format     string
	OutputPath string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var (
	defaultLogger *slog.Logger
	initOnce      sync.Once
)

// Initialize sets up the process-wide logger. It is meant to be called once
// from main before any request is served; later calls are no-ops.
func Initialize(cfg Config) error {
	var initErr error

	initOnce.Do(func() {
		level := parseLevel(cfg.Level)

		var handler slog.Handler
		var writer io.Writer

		if cfg.OutputPath != "" {
			if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0755); err != nil {
				initErr = err
				return
			}

			fileWriter := &lumberjack.Logger{
				Filename:   cfg.OutputPath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}

			writer = io.MultiWriter(os.Stdout, fileWriter)
		} else {
			writer = os.Stdout
		}

		opts := &slog.HandlerOptions{
			Level:     level,
			AddSource: level == slog.LevelDebug,
		}

		if cfg.Format == "text" {
			handler = slog.NewTextHandler(writer, opts)
		} else {
			handler = slog.NewJSONHandler(writer, opts)
		}

		defaultLogger = slog.New(handler)
		slog.SetDefault(defaultLogger)
	})

	return initErr
}

func Get() *slog.Logger {
	if defaultLogger == nil {
		return slog.Default()
	}
	return defaultLogger
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
