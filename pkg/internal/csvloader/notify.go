package csvloader

import "github.com/joeydtaylor/scopecore/pkg/internal/types"

// ConnectLogger attaches loggers to the loader.
func (l *Loader) ConnectLogger(loggers ...types.Logger) {
	l.loggersLock.Lock()
	defer l.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			l.loggers = append(l.loggers, logger)
		}
	}
}

// GetComponentMetadata returns the loader's component metadata.
func (l *Loader) GetComponentMetadata() types.ComponentMetadata {
	return l.componentMetadata
}

// snapshotLoggers returns a stable snapshot of the logger slice.
// Never hold l.loggersLock while invoking logger methods.
func (l *Loader) snapshotLoggers() []types.Logger {
	l.loggersLock.Lock()
	defer l.loggersLock.Unlock()
	if len(l.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(l.loggers))
	copy(out, l.loggers)
	return out
}

// NotifyLoggers sends a log message with the specified level, message, and
// key/value pairs to all registered loggers.
func (l *Loader) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := l.snapshotLoggers()
	if len(loggers) == 0 {
		return
	}

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, logger := range loggers {
		if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

func (l *Loader) notifyLoaded(ch *types.Channel, path string, channelIndex int) {
	l.NotifyLoggers(
		types.InfoLevel,
		"Channel loaded",
		"component", l.componentMetadata.Type,
		"event", "Load",
		"result", "SUCCESS",
		"path", path,
		"channel", ch.Name,
		"key", ch.Key,
		"index", channelIndex,
		"rows", ch.RowCount(),
		"samples", ch.SampleCount(),
	)
}

func (l *Loader) notifyReadError(path string, err error) {
	l.NotifyLoggers(
		types.ErrorLevel,
		"Failed to read channel file",
		"component", l.componentMetadata.Type,
		"event", "Load",
		"result", "FAILURE",
		"path", path,
		"error", err,
	)
}

func (l *Loader) notifyFormatError(path string, err error) {
	l.NotifyLoggers(
		types.WarnLevel,
		"Channel file has no usable sample matrix",
		"component", l.componentMetadata.Type,
		"event", "Load",
		"result", "FAILURE",
		"path", path,
		"error", err,
	)
}

func (l *Loader) notifyConfigMatch(ch *types.Channel, matchedKey string) {
	l.NotifyLoggers(
		types.DebugLevel,
		"Recovered persisted calibration",
		"component", l.componentMetadata.Type,
		"event", "ResolveCalibration",
		"result", "MATCH",
		"channel", ch.Name,
		"key", ch.Key,
		"matchedKey", matchedKey,
		"bias", ch.Bias,
		"scale", ch.Scale,
	)
}

func (l *Loader) notifyDefaultCalibration(ch *types.Channel, channelIndex int) {
	l.NotifyLoggers(
		types.DebugLevel,
		"No configuration match; applied default calibration",
		"component", l.componentMetadata.Type,
		"event", "ResolveCalibration",
		"result", "DEFAULT",
		"channel", ch.Name,
		"key", ch.Key,
		"index", channelIndex,
		"bias", ch.Bias,
		"scale", ch.Scale,
	)
}
