// Package logging builds the diagnostic logger. Records go to stderr and,
// when a log file is configured, to a size-rotated file as well. Standard
// output is never used so it only ever carries search results.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ccollicutt/minigrep/pkg/config"
)

// New creates a logger for the given settings. debug forces the debug level.
func New(settings config.LogSettings, debug bool, stderr io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if debug {
		level = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(stderr), level),
	}

	if settings.File != "" {
		if err := os.MkdirAll(filepath.Dir(settings.File), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}

		rotator := &lumberjack.Logger{
			Filename:   settings.File,
			MaxSize:    settings.MaxSizeMB,
			MaxBackups: settings.MaxBackups,
			MaxAge:     settings.MaxAgeDays,
			Compress:   settings.Compress,
		}

		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotator), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
