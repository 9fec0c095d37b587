package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger wraps a logrus entry to implement the Logger interface.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a JSON-formatted logger writing to stdout.
// An unparseable level falls back to info.
func NewLogrusLogger(level string) *LogrusLogger {
	return newLogrus(level, os.Stdout)
}

// NewTestLogger creates a text-formatted logger for use inside tests,
// writing to the given sink (typically io.Discard or a test writer).
func NewTestLogger(out io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func newLogrus(level string, out io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *LogrusLogger) withFields(fields map[string]interface{}) *logrus.Entry {
	if fields == nil {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
