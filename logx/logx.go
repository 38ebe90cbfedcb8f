// Package logx is a thin leveled-logging indirection in front of
// zerolog, in the shape of junjiewwang-perf-analysis/pkg/utils.Logger:
// a small Debug/Info/Warn/Error interface plus WithField/WithFields for
// attaching structured context, so the engine's own packages never
// import zerolog directly — only this package's Logger type. Used by
// the CLI to report per-pass statistics (nodes visited, limit-hit
// counts, nodes saved) without coupling rewrite/refactor to a specific
// logging library's API.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the leveled, structured logging surface the CLI uses. Every method returns no error: logging failures are never
// allowed to interrupt a synthesis pass.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// zlogLogger adapts a zerolog.Logger to the Logger interface. args are
// formatted printf-style into msg before being handed to zerolog's
// Msg, matching the printf-args convention perf-analysis's own Logger
// interface uses, rather than zerolog's usual key/value event builder —
// structured context instead flows through WithField/WithFields.
type zlogLogger struct {
	zl zerolog.Logger
}

// New builds a Logger writing level-filtered, human-readable lines to
// w (zerolog's ConsoleWriter), at the given level.
func New(level zerolog.Level, w io.Writer) Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}).
		Level(level).
		With().Timestamp().Logger()
	return &zlogLogger{zl: zl}
}

// Default returns a Logger at Info level writing to os.Stdout, the
// zero-ceremony logger a host reaches for absent any configuration.
func Default() Logger {
	return New(zerolog.InfoLevel, os.Stdout)
}

func (l *zlogLogger) Debug(msg string, args ...interface{}) { l.zl.Debug().Msgf(msg, args...) }
func (l *zlogLogger) Info(msg string, args ...interface{})  { l.zl.Info().Msgf(msg, args...) }
func (l *zlogLogger) Warn(msg string, args ...interface{})  { l.zl.Warn().Msgf(msg, args...) }
func (l *zlogLogger) Error(msg string, args ...interface{}) { l.zl.Error().Msgf(msg, args...) }

func (l *zlogLogger) WithField(key string, value interface{}) Logger {
	return &zlogLogger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *zlogLogger) WithFields(fields map[string]interface{}) Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &zlogLogger{zl: ctx.Logger()}
}

// ParseLevel maps a config string to a zerolog.Level, defaulting to
// Info for anything unrecognized (mirrors perf-analysis's
// utils.ParseLogLevel default-to-Info fallback).
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Null returns a Logger that discards everything, for tests and hosts
// that want the engine silent.
func Null() Logger {
	return &zlogLogger{zl: zerolog.Nop()}
}
