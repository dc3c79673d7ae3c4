package logger

import (
	"github.com/orgball2608/apod-gallery/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(cfg *config.Config) *Impl {
		return New(
			Opts{
				Env:       cfg.App.Env,
				Level:     cfg.App.LogLevel,
				SentryDSN: cfg.App.SentryUrl,
			},
		)
	},
	fx.As(new(Logger)),
)
