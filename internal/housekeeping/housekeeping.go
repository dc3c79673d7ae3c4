package housekeeping

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/apod-gallery/internal/ratelimit"
	"github.com/orgball2608/apod-gallery/internal/session"
	"github.com/orgball2608/apod-gallery/pkg/config"
	"github.com/orgball2608/apod-gallery/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config   *config.Config
	Logger   logger.Logger
	Location *time.Location
	Tracker  *session.Tracker
	Limiter  ratelimit.Limiter
}

// Janitor periodically forgets browsers that went quiet, so per-client
// request counters and rate limiters do not grow without bound.
type Janitor struct {
	logger   logger.Logger
	loc      *time.Location
	interval time.Duration
	idleTTL  time.Duration
	tracker  *session.Tracker
	limiter  ratelimit.Limiter

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

func New(opts Opts) *Janitor {
	return &Janitor{
		logger:   opts.Logger.WithComponent("Housekeeping"),
		loc:      opts.Location,
		interval: opts.Config.Housekeeping.Interval,
		idleTTL:  opts.Config.Housekeeping.IdleTTL,
		tracker:  opts.Tracker,
		limiter:  opts.Limiter,
	}
}

// Schedule starts the sweep job. The scheduler shuts down when ctx is done
// or Stop is called, whichever comes first.
func (j *Janitor) Schedule(ctx context.Context) error {
	loc := j.loc
	if loc == nil {
		loc = time.Local
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("failed to create housekeeping scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				j.logger.Info("Context cancelled, skipping housekeeping sweep")
				return
			}
			j.Sweep()
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule housekeeping job: %w", err)
	}

	j.mu.Lock()
	j.scheduler = scheduler
	j.mu.Unlock()
	scheduler.Start()
	j.logger.Info("Housekeeping scheduled", "interval", j.interval.String(), "idle_ttl", j.idleTTL.String())

	go func() {
		<-ctx.Done()
		j.Stop()
	}()

	return nil
}

// Sweep drops idle clients from the request tracker and the rate limiter.
func (j *Janitor) Sweep() (clients, limiters int) {
	clients = j.tracker.Prune(j.idleTTL)
	limiters = j.limiter.Prune(j.idleTTL)
	j.logger.Debug("Housekeeping sweep finished",
		"clients_pruned", clients,
		"limiters_pruned", limiters,
		"clients_active", j.tracker.Len())
	return clients, limiters
}

func (j *Janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.scheduler == nil {
		return
	}
	j.logger.Info("Stopping housekeeping scheduler")
	if err := j.scheduler.Shutdown(); err != nil {
		j.logger.Error("Failed to shut down housekeeping scheduler", "error", err)
	}
	j.scheduler = nil
}
