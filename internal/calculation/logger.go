package calculation

import (
	"fmt"
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// StdLogger writes leveled lines through a standard library logger.
type StdLogger struct {
	out *log.Logger
	min Level
}

// NewStdLogger returns a Logger that drops messages below min.
func NewStdLogger(w io.Writer, min Level) *StdLogger {
	return &StdLogger{out: log.New(w, "rateproj ", log.LstdFlags), min: min}
}

func (l *StdLogger) logf(level Level, tag, format string, args ...any) {
	if level < l.min {
		return
	}
	l.out.Print(tag + " " + fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, "DEBUG", format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, "INFO", format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, "WARN", format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, "ERROR", format, args...) }
