package builder

import (
	"github.com/joeydtaylor/scopecore/pkg/internal/internallogger"
	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

// LoggerOption is exported from the internal logger package.
type LoggerOption = internallogger.LoggerOption

// LogLevel is exported from the internal types package.
type LogLevel = types.LogLevel

// Export log levels to be accessible under the builder package
const (
	DebugLevel  = types.DebugLevel
	InfoLevel   = types.InfoLevel
	WarnLevel   = types.WarnLevel
	ErrorLevel  = types.ErrorLevel
	DPanicLevel = types.DPanicLevel
	PanicLevel  = types.PanicLevel
	FatalLevel  = types.FatalLevel
)

// NewLogger creates a zap-backed logger satisfying types.Logger.
func NewLogger(options ...internallogger.LoggerOption) types.Logger {
	return internallogger.NewLogger(options...)
}

// LoggerWithLevel sets the minimum level the logger emits at.
func LoggerWithLevel(level types.LogLevel) internallogger.LoggerOption {
	return internallogger.WithLevel(level)
}

// LoggerWithDevelopment switches to zap's console-friendly development
// configuration.
func LoggerWithDevelopment() internallogger.LoggerOption {
	return internallogger.WithDevelopment()
}
