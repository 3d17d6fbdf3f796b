// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package logging provides the process-wide zerolog logger for Reelfold.
//
// The logger is configured once from main() and then used either through the
// package-level helpers or through component loggers handed to constructors:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("items", n).Msg("catalog loaded")
//
//	svcLogger := logging.WithComponent("recommend")
//	svcLogger.Debug().Int("resolved", k).Msg("ratings resolved")
//
// Request handlers should prefer logging.Ctx(ctx), which attaches the
// request_id and correlation_id stored by the HTTP middleware.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level, encoding and decorations of the global logger.
// Empty fields fall back to DefaultConfig values.
type Config struct {
	Level     string // trace, debug, info, warn, error, fatal, panic, disabled
	Format    string // json or console
	Caller    bool
	Timestamp bool
	Output    io.Writer // os.Stderr when nil
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Timestamp: true, Output: os.Stderr}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before main() calls Init
func init() {
	initLogger(DefaultConfig())
}

// Init replaces the global logger. Calling it again reconfigures.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger requires mu to be held.
func initLogger(cfg Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	c := zerolog.New(out).With()
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}
	log = c.Logger()
}

// parseLevel converts a level name to zerolog.Level. Unknown names map to
// info so a typo never silences the log.
func parseLevel(level string) zerolog.Level {
	if l, ok := lookupLevel(level); ok {
		return l
	}
	return zerolog.InfoLevel
}

func lookupLevel(level string) (zerolog.Level, bool) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	if name == "" {
		return zerolog.NoLevel, false
	}
	l, err := zerolog.ParseLevel(name)
	return l, err == nil
}

// ValidLevel reports whether level is one of the names understood by Init.
func ValidLevel(level string) bool {
	_, ok := lookupLevel(level)
	return ok
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return *current()
}

// SetLogger replaces the global logger instance. Intended for tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// With creates a child logger context from the global logger.
func With() zerolog.Context {
	return current().With()
}

// WithComponent creates a child logger tagged with a component field.
//
//	catalogLogger := logging.WithComponent("catalog")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts a new message with info level.
func Info() *zerolog.Event { return current().Info() }

// Warn starts a new message with warning level.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts a new message with error level.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a new message with fatal level; os.Exit(1) follows the write.
func Fatal() *zerolog.Event { return current().Fatal() }

// Err starts an error-level message carrying err, or info level when err is nil.
func Err(err error) *zerolog.Event { return current().Err(err) }

// GetLevel returns the current global log level.
func GetLevel() zerolog.Level {
	return zerolog.GlobalLevel()
}

// NewTestLogger creates a JSON logger writing to w, for capturing output in tests.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
