package channelset

import "github.com/joeydtaylor/scopecore/pkg/internal/types"

// ConnectLogger attaches loggers to the set.
func (s *Set) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, logger := range loggers {
		if logger != nil {
			s.loggers = append(s.loggers, logger)
		}
	}
}

// GetComponentMetadata returns the set's component metadata.
func (s *Set) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

func (s *Set) snapshotLoggers() []types.Logger {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	if len(s.loggers) == 0 {
		return nil
	}
	out := make([]types.Logger, len(s.loggers))
	copy(out, s.loggers)
	return out
}

// NotifyLoggers sends a log message with the specified level, message, and
// key/value pairs to all registered loggers.
func (s *Set) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	loggers := s.snapshotLoggers()
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

func (s *Set) notifyShapeMismatch(ch *types.Channel) {
	s.NotifyLoggers(
		types.WarnLevel,
		"Channel dimensions differ from the first channel",
		"component", s.componentMetadata.Type,
		"event", "ShapeCheck",
		"result", "MISMATCH",
		"channel", ch.Name,
		"rows", ch.RowCount(),
		"samples", ch.SampleCount(),
		"declaredRows", s.rowCount,
		"declaredSamples", s.sampleCount,
	)
}

func (s *Set) notifyEdit(change Change) {
	s.NotifyLoggers(
		types.DebugLevel,
		"Channel edited",
		"component", s.componentMetadata.Type,
		"event", "Edit",
		"result", "SUCCESS",
		"index", change.Index,
		"field", int(change.Field),
	)
}
