package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: JSON output in production, colored
// human-friendly output everywhere else.
func New(environment, level string) (*zap.Logger, error) {
	var parsed zapcore.Level
	switch level {
	case "debug":
		parsed = zapcore.DebugLevel
	case "info":
		parsed = zapcore.InfoLevel
	case "warn":
		parsed = zapcore.WarnLevel
	case "error":
		parsed = zapcore.ErrorLevel
	default:
		parsed = zapcore.InfoLevel
	}

	if environment == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(parsed)
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}
