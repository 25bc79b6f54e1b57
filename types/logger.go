package types

// Logger defines methods for structured logging.
//
// Compatible with zap.SugaredLogger, the slog adapter in internal/logging and any
// other logger taking alternating key-value pairs.
type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at FatalLevel and terminates the process.
	//
	// Test and no-op implementations may choose not to exit.
	Fatal(msg string, keysAndValues ...any)
}
