// Package diag implements leveled logging for buddymalloc. It is
// wired only into normal-path instrumentation — arena reservation and
// direct mappings — and is never called from any
// error path: the allocator's propagation policy is silent failure,
// and diag does not compromise that.
package diag

import (
	"log"
	"os"
)

// LogLevel filters which calls actually reach the underlying logger.
type LogLevel byte

// Log levels, from most to least severe. A logger configured at level
// L emits everything at L or lower.
const (
	Ignore LogLevel = iota
	Fatal
	Error
	Warn
	Info
	Verbose
	Debug
	Trace
)

// Logger can be swapped in wholesale by an application embedding this
// package, to route buddymalloc's diagnostics into its own logging
// stack.
type Logger interface {
	Fatalf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Verbosef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Tracef(format string, args ...interface{})
}

type defaultLogger struct {
	level LogLevel
}

func (dl *defaultLogger) canlog(at LogLevel) bool {
	return at <= dl.level
}

func (dl *defaultLogger) printf(at LogLevel, prefix, format string, args ...interface{}) {
	if dl.canlog(at) {
		log.Printf(prefix+format, args...)
	}
}

func (dl *defaultLogger) Fatalf(format string, args ...interface{}) {
	dl.printf(Fatal, "[FATAL] ", format, args...)
}
func (dl *defaultLogger) Errorf(format string, args ...interface{}) {
	dl.printf(Error, "[ERROR] ", format, args...)
}
func (dl *defaultLogger) Warnf(format string, args ...interface{}) {
	dl.printf(Warn, "[WARN] ", format, args...)
}
func (dl *defaultLogger) Infof(format string, args ...interface{}) {
	dl.printf(Info, "[INFO] ", format, args...)
}
func (dl *defaultLogger) Verbosef(format string, args ...interface{}) {
	dl.printf(Verbose, "[VERBOSE] ", format, args...)
}
func (dl *defaultLogger) Debugf(format string, args ...interface{}) {
	dl.printf(Debug, "[DEBUG] ", format, args...)
}
func (dl *defaultLogger) Tracef(format string, args ...interface{}) {
	dl.printf(Trace, "[TRACE] ", format, args...)
}

var logger Logger = &defaultLogger{level: Info}

// SetLogger replaces the package logger wholesale.
func SetLogger(l Logger) {
	if l != nil {
		logger = l
	}
}

// SetLevel adjusts the default logger's verbosity by name. It has no
// effect if a custom Logger has been installed via SetLogger.
func SetLevel(name string) {
	if dl, ok := logger.(*defaultLogger); ok {
		dl.level = levelFromName(name)
	}
}

// SetFile redirects the default logger's output to the named file.
func SetFile(path string) {
	fd, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Errorf("diag: cannot open log file %q: %v", path, err)
		return
	}
	log.SetOutput(fd)
}

func levelFromName(name string) LogLevel {
	switch name {
	case "fatal":
		return Fatal
	case "error":
		return Error
	case "warn":
		return Warn
	case "info":
		return Info
	case "verbose":
		return Verbose
	case "debug":
		return Debug
	case "trace":
		return Trace
	case "ignore":
		return Ignore
	default:
		return Info
	}
}

func Fatalf(format string, args ...interface{})   { logger.Fatalf(format, args...) }
func Errorf(format string, args ...interface{})   { logger.Errorf(format, args...) }
func Warnf(format string, args ...interface{})    { logger.Warnf(format, args...) }
func Infof(format string, args ...interface{})    { logger.Infof(format, args...) }
func Verbosef(format string, args ...interface{}) { logger.Verbosef(format, args...) }
func Debugf(format string, args ...interface{})   { logger.Debugf(format, args...) }
func Tracef(format string, args ...interface{})   { logger.Tracef(format, args...) }
