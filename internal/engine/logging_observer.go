package engine

import "log/slog"

// LoggingObserver logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer on the default logger
func NewLoggingObserver() *LoggingObserver {
	return NewLoggingObserverWith(slog.Default())
}

// NewLoggingObserverWith creates a logging observer on the given logger
func NewLoggingObserverWith(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("command_lifecycle",
		"event", event.Type,
		"command_id", event.CommandID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}

// With returns an observer whose log lines carry the given attributes
func (lo *LoggingObserver) With(args ...any) *LoggingObserver {
	return &LoggingObserver{logger: lo.logger.With(args...)}
}
