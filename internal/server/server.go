package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orgball2608/apod-gallery/internal/apod"
	"github.com/orgball2608/apod-gallery/internal/daterange"
	"github.com/orgball2608/apod-gallery/internal/gallery"
	"github.com/orgball2608/apod-gallery/internal/metrics"
	"github.com/orgball2608/apod-gallery/internal/ratelimit"
	"github.com/orgball2608/apod-gallery/internal/session"
	"github.com/orgball2608/apod-gallery/internal/view"
	"github.com/orgball2608/apod-gallery/pkg/config"
	"github.com/orgball2608/apod-gallery/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	APOD      apod.Client
	Gallery   *gallery.Renderer
	Templates *view.Templates
	Picker    *daterange.Picker
	Tracker   *session.Tracker
	Limiter   ratelimit.Limiter
	Metrics   *metrics.Metrics
	Registry  *prometheus.Registry
}

type Server struct {
	config    *config.Config
	logger    logger.Logger
	apod      apod.Client
	gallery   *gallery.Renderer
	templates *view.Templates
	picker    *daterange.Picker
	tracker   *session.Tracker
	limiter   ratelimit.Limiter
	metrics   *metrics.Metrics
	registry  *prometheus.Registry

	httpServer *http.Server
}

func New(opts Opts) *Server {
	s := &Server{
		config:    opts.Config,
		logger:    opts.Logger.WithComponent("PageServer"),
		apod:      opts.APOD,
		gallery:   opts.Gallery,
		templates: opts.Templates,
		picker:    opts.Picker,
		tracker:   opts.Tracker,
		limiter:   opts.Limiter,
		metrics:   opts.Metrics,
		registry:  opts.Registry,
	}
	s.httpServer = &http.Server{
		Addr:              opts.Config.Addr(),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Routes builds the HTTP handler of the page server.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/assets/*", http.StripPrefix("/assets", view.Assets()))

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware)

		r.Get("/", s.handlePage)
		r.Get("/gallery", s.handleGallery)
		r.Get("/range", s.handleRange)
		r.Post("/modal", s.handleModalOpen)
		r.Get("/modal/dismiss", s.handleModalDismiss)
	})

	return r
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed", "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"latency", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
