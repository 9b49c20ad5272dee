// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// Logger is a leveled logger. All methods are safe for concurrent use.
// Named children share the parent's level and output.
type Logger struct {
	mu     *sync.RWMutex
	level  *Level
	name   string
	out    io.Writer
	debug  *log.Logger
	info   *log.Logger
	warn   *log.Logger
	errLog *log.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{
		mu:    &sync.RWMutex{},
		level: &level,
		out:   out,
	}
	l.rebuild()
	return l
}

// Named returns a child logger whose messages carry a component name,
// e.g. "[api]". The child shares the parent's level, so SetLevel on
// either affects both.
func (l *Logger) Named(name string) *Logger {
	child := &Logger{
		mu:    l.mu,
		level: l.level,
		name:  name,
		out:   l.out,
	}
	child.rebuild()
	return child
}

func (l *Logger) rebuild() {
	prefix := func(tag string) string {
		if l.name == "" {
			return tag + " "
		}
		return fmt.Sprintf("%s [%s] ", tag, l.name)
	}
	flags := log.Ltime
	l.debug = log.New(l.out, prefix("[DBG]"), flags)
	l.info = log.New(l.out, prefix("[INF]"), flags)
	l.warn = log.New(l.out, prefix("[WRN]"), flags)
	l.errLog = log.New(l.out, prefix("[ERR]"), flags)
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return *l.level
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if *l.level >= LevelVerbose {
		l.debug.Output(2, fmt.Sprintf(format, args...))
	}
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if *l.level >= LevelNormal {
		l.info.Output(2, fmt.Sprintf(format, args...))
	}
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if *l.level >= LevelNormal {
		l.warn.Output(2, fmt.Sprintf(format, args...))
	}
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if *l.level >= LevelNormal {
		l.errLog.Output(2, fmt.Sprintf(format, args...))
	}
}
