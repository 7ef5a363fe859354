package scheduler

import (
	"context"
	"time"

	"logrange-backend/config"
	"logrange-backend/internal/model"
	"logrange-backend/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

func newCron() *cron.Cron {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	return cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
}

// RefreshJob rebuilds the chart artifact from the trailing window of a store.
type RefreshJob struct {
	svc     service.LogQueryService
	store   string
	window  time.Duration
	timeout time.Duration
	now     func() time.Time
}

func NewRefreshJob(cfg *config.Config, svc service.LogQueryService) *RefreshJob {
	return &RefreshJob{
		svc:     svc,
		store:   cfg.Chart.RefreshStore,
		window:  cfg.Chart.RefreshWindow,
		timeout: cfg.Query.Timeout,
		now:     time.Now,
	}
}

func (j *RefreshJob) Run(ctx context.Context) error {
	end := j.now().UTC()
	rng := model.QueryRange{Min: end.Add(-j.window), Max: end}

	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	res, err := j.svc.RefreshSeries(ctx, j.store, rng)
	if err != nil {
		return err
	}
	log.Info().Str("store", j.store).Int("points", res.Series.Len()).Str("file", res.Path).Msg("Chart artifact refreshed")
	return nil
}

// NewScheduler registers the chart refresh job. It returns nil when no
// schedule is configured.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, job *RefreshJob) (*cron.Cron, error) {
	schedule := cfg.Chart.RefreshSchedule
	if schedule == "" {
		log.Info().Msg("Chart refresh schedule not set, scheduler disabled")
		return nil, nil
	}

	c := newCron()
	_, err := c.AddFunc(schedule, func() {
		if err := job.Run(context.Background()); err != nil {
			log.Error().Err(err).Str("store", job.store).Msg("Error during scheduled chart refresh")
		}
	})
	if err != nil {
		log.Error().Err(err).Str("schedule", schedule).Msg("Failed to add cron job")
		return nil, err
	}
	log.Info().Str("schedule", schedule).Str("store", job.store).Dur("window", job.window).Msg("Scheduled chart refresh job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c, nil
}
