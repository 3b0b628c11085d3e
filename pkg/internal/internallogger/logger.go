package internallogger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap configuration before the logger is built.
type LoggerOption func(*zap.Config, *int)

// ZapLoggerAdapter adapts a zap logger to the types.Logger interface used
// throughout the library.
type ZapLoggerAdapter struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	callerDepth := 1 // Default caller depth

	for _, option := range options {
		option(&config, &callerDepth)
	}

	encoderConfig := config.EncoderConfig
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if config.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	level := zap.NewAtomicLevelAt(config.Level.Level())
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerDepth))

	return &ZapLoggerAdapter{
		logger: logger,
		level:  level,
	}
}
