package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

const (
	timeFormatDefault = "2006/01/02 15:04:05"
	TimeFormatRFC3339 = "rfc3339"
)

var levels = map[string]LogLevel{
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERROR": LevelError,
	"NONE":  LevelNone,
}

func Levelify(levelString string) (LogLevel, error) {
	upperLevelString := strings.ToUpper(levelString)
	level, ok := levels[upperLevelString]
	if !ok {
		expected := "DEBUG, INFO, WARN, ERROR, NONE"
		return level, fmt.Errorf("Unknown log level '%s', expected one of %s", levelString, expected)
	}
	return level, nil
}

func (l LogLevel) String() string {
	for name, level := range levels {
		if level == l {
			return name
		}
	}
	return "UNKNOWN"
}

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	DebugWithDetails(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
	Error(tag, msg string, args ...interface{})
	ErrorWithDetails(tag, msg string, args ...interface{})
	HandlePanic(tag string)
	ToggleForcedDebug()
	Flush() error
	FlushTimeout(time.Duration) error
}

type logger struct {
	level       LogLevel
	forcedDebug bool
	timeFormat  string
	clock       clock.Clock

	mu     sync.Mutex
	writer io.Writer
}

func NewLogger(level LogLevel) Logger {
	return NewWriterLogger(level, os.Stderr)
}

func NewWriterLogger(level LogLevel, writer io.Writer, timeFormat_optional ...string) Logger {
	return newLogger(level, writer, clock.NewClock(), timeFormat_optional...)
}

// NewClockLogger is NewWriterLogger with an injectable clock, for callers that
// need deterministic timestamps.
func NewClockLogger(level LogLevel, writer io.Writer, clk clock.Clock, timeFormat_optional ...string) Logger {
	return newLogger(level, writer, clk, timeFormat_optional...)
}

func newLogger(level LogLevel, writer io.Writer, clk clock.Clock, timeFormat_optional ...string) *logger {
	timeFormat := timeFormatDefault
	if len(timeFormat_optional) > 0 && timeFormat_optional[0] == TimeFormatRFC3339 {
		timeFormat = time.RFC3339
	}

	return &logger{
		level:      level,
		timeFormat: timeFormat,
		clock:      clk,
		writer:     writer,
	}
}

func (l *logger) Debug(tag, msg string, args ...interface{}) {
	if l.level > LevelDebug && !l.forcedDebug {
		return
	}
	l.printf(tag, "DEBUG", msg, args...)
}

// DebugWithDetails will automatically change the format of the message
// to insert a block of text after the log
func (l *logger) DebugWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Debug(tag, msg, args...)
}

func (l *logger) Info(tag, msg string, args ...interface{}) {
	if l.level > LevelInfo && !l.forcedDebug {
		return
	}
	l.printf(tag, "INFO", msg, args...)
}

func (l *logger) Warn(tag, msg string, args ...interface{}) {
	if l.level > LevelWarn && !l.forcedDebug {
		return
	}
	l.printf(tag, "WARN", msg, args...)
}

func (l *logger) Error(tag, msg string, args ...interface{}) {
	if l.level > LevelError && !l.forcedDebug {
		return
	}
	l.printf(tag, "ERROR", msg, args...)
}

// ErrorWithDetails will automatically change the format of the message
// to insert a block of text after the log
func (l *logger) ErrorWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Error(tag, msg, args...)
}

func (l *logger) HandlePanic(tag string) {
	if l.logPanic(tag, recover()) {
		os.Exit(2)
	}
}

func (l *logger) logPanic(tag string, recovered interface{}) bool {
	if recovered == nil {
		return false
	}
	l.ErrorWithDetails(tag, "Panic: %s", recovered, debug.Stack())
	return true
}

func (l *logger) ToggleForcedDebug() {
	l.mu.Lock()
	l.forcedDebug = !l.forcedDebug
	l.mu.Unlock()
}

func (l *logger) Flush() error { return nil }

func (l *logger) FlushTimeout(_ time.Duration) error { return nil }

func (l *logger) printf(tag, level, msg string, args ...interface{}) {
	line := fmt.Sprintf("[%s] %s %s - %s\n", tag, l.clock.Now().Format(l.timeFormat), level, fmt.Sprintf(msg, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.writer, line)
}
