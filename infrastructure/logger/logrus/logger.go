// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Supports level/format selection and rotating file output via lumberjack

package logrus

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a LogrusLogger
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is "json" or "text"
	Format string

	// File enables rotating file output when non-empty
	File string

	// Output receives log lines when File is empty. Defaults to stdout.
	Output io.Writer
}

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	logger *logrus.Logger
	closer io.Closer
}

// NewLogrusLogger creates a logger from options
func NewLogrusLogger(opts Options) (*LogrusLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(defaultString(opts.Level, "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	l.SetLevel(level)

	switch strings.ToLower(defaultString(opts.Format, "text")) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	result := &LogrusLogger{logger: l}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		l.SetOutput(rotator)
		result.closer = rotator
	} else if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stdout)
	}

	return result, nil
}

// NewFromLogrus wraps an existing logrus logger
func NewFromLogrus(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{logger: l}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(logrus.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log(logrus.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(logrus.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log(logrus.ErrorLevel, msg, fields)
}

// Close releases the log file, if any
func (l *LogrusLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *LogrusLogger) log(level logrus.Level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		l.logger.Log(level, msg)
		return
	}
	l.logger.WithFields(logrus.Fields(fields)).Log(level, msg)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
