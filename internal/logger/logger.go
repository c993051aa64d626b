package logger

import (
	"fmt"
	"os"

	"chainlist-catalog/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates and configures a new zap logger based on the provided configuration.
// An unparsable level falls back to info; an unknown encoding is an error.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	return newLogger(cfg, zapcore.Lock(os.Stdout))
}

func newLogger(cfg config.LoggerConfig, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevel()
	levelErr := logLevel.UnmarshalText([]byte(cfg.Level))
	if levelErr != nil {
		logLevel.SetLevel(zap.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json", "":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", cfg.Encoding)
	}

	logger := zap.New(zapcore.NewCore(
		encoder,
		sink,
		logLevel,
	), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	if levelErr != nil {
		logger.Warn("Failed to parse log level, defaulting to info",
			zap.String("level", cfg.Level), zap.Error(levelErr))
	}

	return logger, nil
}
