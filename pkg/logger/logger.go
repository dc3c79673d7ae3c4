package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// Printf lets the logger act as an fx.Printer.
	Printf(format string, args ...any)

	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	Level     string
	SentryDSN string
	Writer    io.Writer
}

type Impl struct {
	*slog.Logger
}

var _ Logger = (*Impl)(nil)

// New builds a slog logger that writes through zerolog and, when a Sentry DSN
// is configured, forwards error-level records to Sentry.
func New(opts Opts) *Impl {
	level := parseLevel(opts.Level)

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	if opts.Env == "" || opts.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: opts.Writer != nil}
	}
	zl := zerolog.New(w).With().Timestamp().Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Error().Err(err).Msg("Failed to initialize sentry, continuing without it")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{Logger: slog.New(slogmulti.Fanout(handlers...))}
}

// NewNop discards everything. Used by tests.
func NewNop() *Impl {
	return New(Opts{Env: "test", Level: "error", Writer: io.Discard})
}

func (l *Impl) Printf(format string, args ...any) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

func (l *Impl) WithComponent(name string) Logger {
	return &Impl{Logger: l.Logger.With("component", name)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
