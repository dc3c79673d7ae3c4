package app

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/orgball2608/apod-gallery/internal/apod"
	"github.com/orgball2608/apod-gallery/internal/apod/apodimpl"
	"github.com/orgball2608/apod-gallery/internal/daterange"
	"github.com/orgball2608/apod-gallery/internal/gallery"
	"github.com/orgball2608/apod-gallery/internal/housekeeping"
	"github.com/orgball2608/apod-gallery/internal/metrics"
	"github.com/orgball2608/apod-gallery/internal/ratelimit"
	"github.com/orgball2608/apod-gallery/internal/server"
	"github.com/orgball2608/apod-gallery/internal/session"
	"github.com/orgball2608/apod-gallery/internal/view"
	"github.com/orgball2608/apod-gallery/pkg/config"
	"github.com/orgball2608/apod-gallery/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		metrics.NewRegistry,
		metrics.New,
		newLocation,
		daterange.New,
	),
	fx.Provide(
		fx.Annotate(
			apodimpl.New,
			fx.As(new(apod.Client)),
		),
		fx.Annotate(
			newLimiter,
			fx.As(new(ratelimit.Limiter)),
		),
	),
	fx.Provide(
		session.NewTracker,
		gallery.New,
		view.New,
		server.New,
		housekeeping.New,
	),
	fx.Invoke(run),
)

// newLocation resolves the zone that decides what "today" is for the picker.
func newLocation(cfg *config.Config, log logger.Logger) *time.Location {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn("Failed to load timezone, using local timezone", "timezone", cfg.App.Timezone, "error", err)
		return time.Local
	}
	return loc
}

func newLimiter(cfg *config.Config) *ratelimit.InMemoryLimiter {
	return ratelimit.NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
}

func run(lc fx.Lifecycle, log logger.Logger, srv *server.Server, janitor *housekeeping.Janitor) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			srv.Start()

			if err := janitor.Schedule(ctx); err != nil {
				log.Error("Housekeeping schedule error", "error", err)
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			janitor.Stop()

			err := srv.Shutdown(stopCtx)
			sentry.Flush(2 * time.Second)
			return err
		},
	})
}
