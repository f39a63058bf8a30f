package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	DefaultSettingsRefreshSchedule = "0 * * * * *"
	DefaultSettingsRefreshTimeout  = 5 * time.Second
)

type settingsRefresher interface {
	Refresh(ctx context.Context) error
}

// SettingsRefreshJob reloads cached settings on a cron schedule. Start also refreshes once
// so the cache is warm before the first request; a failure there is logged, not fatal.
type SettingsRefreshJob struct {
	refresher settingsRefresher
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewSettingsRefreshJob(
	refresher settingsRefresher,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *SettingsRefreshJob {
	if schedule == "" {
		schedule = DefaultSettingsRefreshSchedule
	}
	if timeout <= 0 {
		timeout = DefaultSettingsRefreshTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SettingsRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		timeout:   timeout,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "settings_refresh_job"),
	}
}

func (j *SettingsRefreshJob) Name() string {
	return "settings refresh job"
}

// Start schedules the refresh. It fails on an invalid schedule.
func (j *SettingsRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settings refresh job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *SettingsRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Settings refresh job stopped")
}

func (j *SettingsRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Settings refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Settings refreshed")
}
