package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLevel translates a string representation of a log level to a log level enum.
// Unrecognized strings produce InfoLevel.
func ParseLevel(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	default:
		return InfoLevel
	}
}

// Logger writes log messages at or above a threshold level. A nil *Logger discards everything.
type Logger struct {
	level  int
	logger *log.Logger
}

// New creates a Logger writing messages at or above level to out, prefixing them with component
func New(out io.Writer, level int, component string) *Logger {
	prefix := ""
	if len(component) > 0 {
		prefix = component + " "
	}
	return &Logger{level: level, logger: log.New(out, prefix, log.LstdFlags|log.Lmsgprefix)}
}

// Stderr creates a Logger writing to os.Stderr
func Stderr(level int, component string) *Logger {
	return New(os.Stderr, level, component)
}

// Discard creates a Logger which drops every message
func Discard() *Logger {
	return New(io.Discard, FatalLevel+1, "")
}

// Level returns the threshold of this Logger
func (l *Logger) Level() int {
	if l == nil {
		return FatalLevel + 1
	}
	return l.level
}

// Enabled returns true iff messages at level would be written
func (l *Logger) Enabled(level int) bool {
	return l != nil && level >= l.level
}

// With returns a Logger sharing this Logger's output and level, with an additional component prefix
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		level:  l.level,
		logger: log.New(l.logger.Writer(), l.logger.Prefix()+component+" ", l.logger.Flags()),
	}
}

// Logf writes a formatted message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.logger.Printf("[%s] %s", LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Tracef writes a formatted message at TraceLevel
func (l *Logger) Tracef(format string, args ...interface{}) { l.Logf(TraceLevel, format, args...) }

// Debugf writes a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) { l.Logf(DebugLevel, format, args...) }

// Infof writes a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) { l.Logf(InfoLevel, format, args...) }

// Warnf writes a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) { l.Logf(WarnLevel, format, args...) }

// Errorf writes a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) { l.Logf(ErrorLevel, format, args...) }
