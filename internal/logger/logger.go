package logger

// Logger is the structured logging interface harness components depend on.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})

	// WithFields returns a logger that adds the given fields to every entry
	WithFields(fields map[string]interface{}) Logger
}
