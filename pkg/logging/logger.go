package logging

import (
	"fmt"
	"log"
	"sync/atomic"
)

// currentLevel is the process-wide log level, stored atomically so that
// loggers may be used concurrently with level changes.
var currentLevel uint32 = uint32(LevelInfo)

// SetLevel sets the process-wide log level.
func SetLevel(level Level) {
	atomic.StoreUint32(&currentLevel, uint32(level))
}

// CurrentLevel returns the process-wide log level.
func CurrentLevel() Level {
	return Level(atomic.LoadUint32(&currentLevel))
}

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is designed to use the
// standard logger provided by the log package, so it respects any flags set
// for that logger. It is safe for concurrent usage.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
}

// RootLogger is the root logger from which all other loggers derive.
var RootLogger = &Logger{}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		prefix: prefix,
	}
}

// output is the internal logging method.
func (l *Logger) output(level Level, line string) {
	if l == nil || level > CurrentLevel() {
		return
	}

	// Add level and prefix annotations.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] [%s] %s", level, l.prefix, line)
	} else {
		line = fmt.Sprintf("[%s] %s", level, line)
	}

	// Log.
	log.Output(3, line)
}

// Error logs an error with semantics equivalent to fmt.Print.
func (l *Logger) Error(v ...interface{}) {
	l.output(LevelError, fmt.Sprint(v...))
}

// Errorf logs an error with semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(LevelError, fmt.Sprintf(format, v...))
}

// Warn logs a warning with semantics equivalent to fmt.Print.
func (l *Logger) Warn(v ...interface{}) {
	l.output(LevelWarn, fmt.Sprint(v...))
}

// Warnf logs a warning with semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(LevelWarn, fmt.Sprintf(format, v...))
}

// Info logs information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.output(LevelInfo, fmt.Sprint(v...))
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs debugging information with semantics equivalent to fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.output(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs debugging information with semantics equivalent to fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LevelDebug, fmt.Sprintf(format, v...))
}
