package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/asteroids/config"
)

const (
	logDir      = "logs"
	logFileName = "asteroids.log"
)

// newLogger builds the process logger
// The screen owns stdout and stderr, so logging goes to a file or nowhere:
// an explicit file always logs, otherwise only debug runs log into logDir
func newLogger(cfg config.LoggingConfig, debug bool) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	path := cfg.File
	if path == "" {
		if !debug {
			return zap.NewNop(), level, nil
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, level, fmt.Errorf("create log dir: %w", err)
		}
		path = filepath.Join(logDir, logFileName)
	}
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, level, fmt.Errorf("build logger: %w", err)
	}
	return log, level, nil
}

func parseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
