package mincut

import "log/slog"

// Logger defines the structured logging surface the solvers emit to.
//
// Compatible with zap.SugaredLogger and other key-value structured loggers.
// Degraded-but-valid outcomes (budget exhaustion, fewer-than-k partitions,
// rebalance cap) are reported at Warn level; per-phase progress at Debug.
type Logger interface {
	// Debug logs a message at DebugLevel with key-value fields.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel with key-value fields.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel with key-value fields.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel with key-value fields.
	Error(msg string, keysAndValues ...any)
}

// SlogLogger implements Logger on top of the standard log/slog package.
type SlogLogger struct {
	logger *slog.Logger
}

// Compile-time assertion that SlogLogger implements Logger.
var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger wraps an existing *slog.Logger.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewSlogDefault wraps slog.Default().
func NewSlogDefault() *SlogLogger {
	return &SlogLogger{logger: slog.Default()}
}

// Debug logs a debug-level message with key-value fields.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info-level message with key-value fields.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warn-level message with key-value fields.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error-level message with key-value fields.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// nopLogger discards everything; used when no Logger is configured.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// loggerOrNop returns l, or the shared no-op logger when l is nil.
func loggerOrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}

	return l
}
