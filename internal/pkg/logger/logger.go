package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/guinchoja/backend/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with the file/console output wiring used across the
// services.
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// InitZapLoggerFromConfig builds the application logger from configuration.
// Debug environments get a colored console encoder; everything else logs
// JSON, optionally teeing into a file when a path is configured.
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Logger.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var cores []zapcore.Core
	var file *os.File

	if cfg.App.Debug {
		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stdout),
			level,
		))
	} else {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			level,
		))
	}

	if cfg.Logger.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logger.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Logger.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(f),
			level,
		))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zl = zl.With(
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	return &ZapLogger{
		Logger:   zl,
		sugar:    zl.Sugar(),
		filePath: cfg.Logger.FilePath,
		file:     file,
	}, nil
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *ZapLogger {
	zl := zap.NewNop()
	return &ZapLogger{Logger: zl, sugar: zl.Sugar()}
}

// Sugar returns the sugared logger for printf-style call sites.
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes buffered entries and releases the log file.
func (l *ZapLogger) Close() {
	_ = l.Logger.Sync()
	if l.file != nil {
		_ = l.file.Close()
	}
}
