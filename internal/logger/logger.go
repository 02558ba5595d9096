package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type runKeyCtx struct{}

type implLogger struct {
	logger zerolog.Logger
}

// New creates a Logger writing to stderr, keeping stdout free for command output.
func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stderr)
}

// NewWithWriter creates a Logger for the given level and format ("json" or "text").
// Unknown levels fall back to info.
func NewWithWriter(level, format string, w io.Writer) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	}

	return &implLogger{
		logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &implLogger{logger: zerolog.Nop()}
}

// WithRunKey attaches a run key that is added to every entry logged with ctx.
func WithRunKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, runKeyCtx{}, key)
}

// RunKey returns the run key stored in ctx, if any.
func RunKey(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	key, _ := ctx.Value(runKeyCtx{}).(string)
	return key
}

func (l *implLogger) event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if key := RunKey(ctx); key != "" {
		e = e.Str("run", key)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Debug()).Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Info()).Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Warn()).Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Error()).Msgf(msg, args...)
}
