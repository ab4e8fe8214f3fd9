package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Leveled logger used across the API.
// Backed by zerolog; keeps the printf-style Debugf/Infof/Warnf/Errorf/Fatalf surface.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu     sync.RWMutex
	logger = newZerolog(os.Stdout, false)
	level  = LevelInfo
)

func newZerolog(w io.Writer, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Str("service", "seosites-api").Logger()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	default:
		level = LevelInfo
	}
}

// SetOutput replaces the sink. pretty selects the human-readable console format.
func SetOutput(w io.Writer, pretty bool) {
	mu.Lock()
	defer mu.Unlock()
	logger = newZerolog(w, pretty)
}

func shouldLog(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debugf(format string, v ...interface{}) {
	if !shouldLog(LevelDebug) {
		return
	}
	l := current()
	l.Debug().Msgf(format, v...)
}

func Infof(format string, v ...interface{}) {
	if !shouldLog(LevelInfo) {
		return
	}
	l := current()
	l.Info().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	if !shouldLog(LevelWarn) {
		return
	}
	l := current()
	l.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	if !shouldLog(LevelError) {
		return
	}
	l := current()
	l.Error().Msgf(format, v...)
}

func Fatalf(format string, v ...interface{}) {
	l := current()
	l.WithLevel(zerolog.FatalLevel).Msgf(format, v...)
	os.Exit(1)
}

// Request logs one finished HTTP request with structured fields.
func Request(method, path string, status int, latency time.Duration, clientIP string) {
	lvl := LevelInfo
	if status >= 500 {
		lvl = LevelError
	}
	if !shouldLog(lvl) {
		return
	}
	l := current()
	ev := l.Info()
	if lvl == LevelError {
		ev = l.Error()
	}
	ev.Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("latency", latency).
		Str("ip", clientIP).
		Msg("request")
}

// Println kept for brief messages (maps to Info)
func Println(v ...interface{}) {
	if !shouldLog(LevelInfo) {
		return
	}
	l := current()
	l.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func Info(v string) { Infof("%s", v) }
func Warn(v string) { Warnf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
