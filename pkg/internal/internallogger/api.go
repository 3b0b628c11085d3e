package internallogger

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/zap"

	"github.com/joeydtaylor/scopecore/pkg/internal/types"
)

func (z *ZapLoggerAdapter) Flush() error {
	err := z.logger.Sync()
	if err == nil {
		return nil
	}
	// Syncing stdout fails with ENOTTY on terminals and EINVAL on pipes;
	// neither is a logging failure.
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) {
		return nil
	}
	return err
}

// IsLevelEnabled reports whether the adapter would emit at the given level.
// Components use this to gate notification fan-out on hot paths.
func (z *ZapLoggerAdapter) IsLevelEnabled(level types.LogLevel) bool {
	return z.logger.Core().Enabled(ConvertLevel(level))
}

func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if z.logger == nil || z.logger.Core() == nil {
		return
	}
	zapLevel := ConvertLevel(level)
	if !z.logger.Core().Enabled(zapLevel) {
		return
	}
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue // Skip non-string keys
		}
		value := keysAndValues[i+1]
		switch v := value.(type) {
		case string, int, int32, int64, float64, bool:
			fields = append(fields, zap.Any(key, v))
		case error:
			fields = append(fields, zap.String(key, v.Error()))
		default:
			// Stringify types that might cause serialization issues.
			fields = append(fields, zap.String(key, fmt.Sprintf("%v", v)))
		}
	}
	if ce := z.logger.Check(zapLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

// Implement the Logger interface methods for each log level
func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) DPanic(msg string, keysAndValues ...interface{}) {
	z.Log(types.DPanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Panic(msg string, keysAndValues ...interface{}) {
	z.Log(types.PanicLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) Fatal(msg string, keysAndValues ...interface{}) {
	z.Log(types.FatalLevel, msg, keysAndValues...)
}

func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return convertZapLevel(z.level.Level())
}

func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	z.level.SetLevel(ConvertLevel(level))
}
