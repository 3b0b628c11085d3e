package internallogger

import (
	"go.uber.org/zap"

	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// WithLevel sets the minimum level the logger emits at.
func WithLevel(level types.LogLevel) LoggerOption {
	return func(config *zap.Config, _ *int) {
		config.Level = zap.NewAtomicLevelAt(ConvertLevel(level))
	}
}

// WithDevelopment switches the logger to zap's development configuration
// (console-friendly, DPanic panics).
func WithDevelopment() LoggerOption {
	return func(config *zap.Config, _ *int) {
		*config = zap.NewDevelopmentConfig()
	}
}

// WithCallerSkip adjusts the caller depth reported in log entries, useful
// when the adapter is wrapped by another logging facade.
func WithCallerSkip(depth int) LoggerOption {
	return func(_ *zap.Config, callerDepth *int) {
		*callerDepth = depth
	}
}
