package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/schedule"
	"github.com/serdarsalim/timespent-sub000/pkg/jobs"
)

type retentionUserLister interface {
	ListIDs(ctx context.Context) ([]string, error)
}

// RetentionConfig governs the periodic schedule cleanup.
type RetentionConfig struct {
	Enabled     bool
	DefaultDays int
	CronSpec    string
	Workers     int
}

// RetentionService prunes old schedule rows on a cron schedule. Each
// run fans one job per user into a worker pool; a sweep rewrites the
// user's schedule keeping malformed day keys and entries whose
// recurrence is still live past the cutoff.
type RetentionService struct {
	users     retentionUserLister
	schedules *ScheduleService
	profiles  scheduleProfileReader
	metrics   *MetricsService
	logger    *zap.Logger
	config    RetentionConfig

	queue *jobs.Queue
	cron  *cron.Cron
}

// NewRetentionService constructs the retention sweeper.
func NewRetentionService(users retentionUserLister, schedules *ScheduleService, profiles scheduleProfileReader, metrics *MetricsService, logger *zap.Logger, config RetentionConfig) *RetentionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.DefaultDays <= 0 {
		config.DefaultDays = 400
	}
	if config.CronSpec == "" {
		config.CronSpec = "30 3 * * *"
	}

	s := &RetentionService{
		users:     users,
		schedules: schedules,
		profiles:  profiles,
		metrics:   metrics,
		logger:    logger,
		config:    config,
	}
	s.queue = jobs.NewQueue("retention", s.handleJob, jobs.QueueConfig{
		Workers:    config.Workers,
		BufferSize: 4096,
		Logger:     logger,
	})
	return s
}

// Start schedules the periodic sweep. No-op when retention is disabled.
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("retention sweeps disabled")
		return nil
	}

	s.queue.Start(ctx)
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.config.CronSpec, func() {
		if err := s.EnqueueSweep(ctx); err != nil {
			s.logger.Error("failed to enqueue retention sweep", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule retention cron: %w", err)
	}
	s.cron.Start()
	s.logger.Info("retention sweeps scheduled", zap.String("spec", s.config.CronSpec))
	return nil
}

// Stop halts the cron schedule and drains the worker pool.
func (s *RetentionService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.queue.Stop()
}

// RunOnce sweeps every user through the worker pool and returns after
// the queue drains. Used by the CLI; ignores the Enabled flag.
func (s *RetentionService) RunOnce(ctx context.Context) error {
	s.queue.Start(ctx)
	err := s.EnqueueSweep(ctx)
	s.queue.Stop()
	return err
}

// EnqueueSweep queues one sweep job per user.
func (s *RetentionService) EnqueueSweep(ctx context.Context) error {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users for retention: %w", err)
	}
	for _, id := range ids {
		if err := s.queue.Enqueue(jobs.Job{
			ID:      uuid.NewString(),
			Type:    "retention.sweep",
			Payload: id,
		}); err != nil {
			s.logger.Warn("retention queue full, sweep deferred", zap.String("user_id", id))
		}
	}
	s.logger.Info("retention sweep enqueued", zap.Int("users", len(ids)))
	return nil
}

func (s *RetentionService) handleJob(ctx context.Context, job jobs.Job) error {
	userID, ok := job.Payload.(string)
	if !ok {
		return fmt.Errorf("retention job %s has no user payload", job.ID)
	}
	return s.SweepUser(ctx, userID)
}

// SweepUser rewrites one user's schedule with rows past their retention
// window removed.
func (s *RetentionService) SweepUser(ctx context.Context, userID string) error {
	start := time.Now()
	p := Principal{ID: userID, Role: models.RoleUser}

	profile, err := s.profiles.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load profile for sweep: %w", err)
	}
	days := profile.RetentionDays
	if days <= 0 {
		days = s.config.DefaultDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	store, err := s.schedules.Load(ctx, p)
	if err != nil {
		return fmt.Errorf("load schedule for sweep: %w", err)
	}

	before := schedule.ToRows(store, nil)
	kept := schedule.ToRows(store, &cutoff)
	dropped := len(before) - len(kept)
	if dropped <= 0 {
		s.metrics.ObserveRetentionSweep(time.Since(start), 0)
		return nil
	}

	if err := s.schedules.Save(ctx, p, schedule.FromRows(kept)); err != nil {
		return fmt.Errorf("save swept schedule: %w", err)
	}

	s.metrics.ObserveRetentionSweep(time.Since(start), dropped)
	s.logger.Info("retention sweep complete",
		zap.String("user_id", userID),
		zap.Int("rows_dropped", dropped),
		zap.Duration("took", time.Since(start)))
	return nil
}
