package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the logging interface used across the application. Callers pass
// alternating key-value pairs after the message.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger is a plain stdlib-backed Logger implementation
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger creates a Logger writing to stdout/stderr
func NewLogger() Logger {
	return NewWriterLogger(os.Stdout, os.Stderr)
}

// NewWriterLogger creates a Logger with explicit destinations; errors go to
// errOut, everything else to out
func NewWriterLogger(out, errOut io.Writer) Logger {
	return &SimpleLogger{
		infoLogger:  log.New(out, "INFO: ", log.Ldate|log.Ltime),
		errorLogger: log.New(errOut, "ERROR: ", log.Ldate|log.Ltime),
		debugLogger: log.New(out, "DEBUG: ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "WARN: ", log.Ldate|log.Ltime),
	}
}

// format renders the message followed by key=value pairs. A trailing key
// without a value is rendered with a bare "?" so the mismatch is visible in
// the output instead of dropped.
func format(msg string, keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		b.WriteByte(' ')
		fmt.Fprintf(&b, "%v=", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v", keysAndValues[i+1])
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Info logs an informational message
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infoLogger.Print(format(msg, keysAndValues))
}

// Error logs an error message
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Print(format(msg, keysAndValues))
}

// Debug logs a debug message
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugLogger.Print(format(msg, keysAndValues))
}

// Warn logs a warning message
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warnLogger.Print(format(msg, keysAndValues))
}
