// Package logger is the logging facade for pawlog. Handlers, services and
// stores log through Logger; the process picks a backend once at startup.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level is a log severity. It shares slog's numbering.
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)

	// levelOff is above every level a caller can emit
	levelOff = Level(slog.LevelError + 4)
)

func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// ParseLevel reads a logging.level setting. Unknown values fall back to info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn
	}
	var sl slog.Level
	if err := sl.UnmarshalText([]byte(s)); err != nil {
		return LevelInfo
	}
	return Level(sl)
}

// Field is one structured key/value on a log entry
type Field = slog.Attr

func String(key, value string) Field { return slog.String(key, value) }

func Int(key string, value int) Field { return slog.Int(key, value) }

func Int64(key string, value int64) Field { return slog.Int64(key, value) }

func Duration(key string, value time.Duration) Field { return slog.Duration(key, value) }

// Err records err under "error"; a nil error logs as null
func Err(err error) Field {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}

// EventID tags an entry with the behavior event it concerns
func EventID(id int64) Field { return slog.Int64("event_id", id) }

// Store tags an entry with the storage driver in use
func Store(driver string) Field { return slog.String("store", driver) }

// Logger is handed to handlers, services and stores
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Logger
	// WithContext adds the request ID carried by ctx, if any
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config selects level, encoding and destination
type Config struct {
	Level Level
	// Format is "json" (default) or "text"
	Format    string
	AddSource bool
	// Output defaults to stdout
	Output io.Writer
}

var defaultLogger Logger

// SetDefault installs the process-wide logger
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the process-wide logger, a JSON info logger on stdout until
// SetDefault runs.
func Default() Logger {
	if defaultLogger == nil {
		defaultLogger = NewSlogLogger(Config{Level: LevelInfo, Output: os.Stdout})
	}
	return defaultLogger
}

// Nop drops every entry
func Nop() Logger {
	return &slogLogger{logger: slog.New(slog.DiscardHandler), level: levelOff}
}
