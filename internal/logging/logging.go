// Package logging builds the process logger from the log section of the
// configuration.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"goal-server/internal/config"
)

// New returns a logger writing to stdout, a rotating file, or both.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with the console destination replaced by out. If the
// log file's directory cannot be created, file output is dropped, the console
// is used instead, and the failure is logged once.
func NewWithWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	var writers []io.Writer
	var fileErr error

	mode := strings.ToLower(cfg.Mode)
	if mode == "file" || mode == "both" {
		fw, err := fileWriter(cfg)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, fw)
		}
	}
	if mode != "file" || len(writers) == 0 {
		writers = append(writers, consoleWriter(cfg.JSON, out))
	}

	var w io.Writer
	if len(writers) == 1 {
		w = writers[0]
	} else {
		w = io.MultiWriter(writers...)
	}

	logger := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("file_path", cfg.FilePath).Msg("log file disabled")
	}
	return logger
}

func consoleWriter(useJSON bool, out io.Writer) io.Writer {
	if useJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

func fileWriter(cfg config.LogConfig) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}, nil
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
