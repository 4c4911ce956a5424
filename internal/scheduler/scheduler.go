package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"modsync/internal/config"
)

type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type Cleaner interface {
	Clean(grace time.Duration) int
}

type Poller interface {
	Poll(ctx context.Context) error
}

// Task is one maintenance job run on a cron spec.
type Task struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	cron    *cron.Cron
	tasks   []Task
	timeout time.Duration
	logger  *slog.Logger
}

func New(tasks []Task, timeout time.Duration, logger *slog.Logger) *Scheduler {
	logger = logger.With("component", "scheduler")

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger})),
		),
		tasks:   tasks,
		timeout: timeout,
		logger:  logger,
	}
}

// MaintenanceTasks builds the cache sweep, queue clean and modqueue poll
// tasks. Nil dependencies are left out.
func MaintenanceTasks(cfg config.MaintenanceConfig, sweeper Sweeper, cleaners []Cleaner, poller Poller) []Task {
	var tasks []Task

	if sweeper != nil {
		tasks = append(tasks, Task{
			Name: "cache_sweep",
			Spec: cfg.CacheSweep,
			Run: func(ctx context.Context) error {
				_, err := sweeper.Sweep(ctx)
				return err
			},
		})
	}

	if len(cleaners) > 0 {
		tasks = append(tasks, Task{
			Name: "queue_clean",
			Spec: cfg.QueueClean,
			Run: func(context.Context) error {
				for _, c := range cleaners {
					c.Clean(cfg.CleanGrace)
				}
				return nil
			},
		})
	}

	if poller != nil {
		tasks = append(tasks, Task{
			Name: "modqueue_poll",
			Spec: cfg.ModqueuePoll,
			Run:  poller.Poll,
		})
	}

	return tasks
}

// Start runs every task once, then on its spec until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, t := range s.tasks {
		if _, err := s.cron.AddFunc(t.Spec, func() { s.run(ctx, t) }); err != nil {
			return fmt.Errorf("schedule %s: %w", t.Name, err)
		}
	}

	s.logger.Info("scheduler started", "tasks", len(s.tasks))

	for _, t := range s.tasks {
		s.run(ctx, t)
	}

	s.cron.Start()
	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) run(ctx context.Context, t Task) {
	if ctx.Err() != nil {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := t.Run(runCtx); err != nil {
		s.logger.Error("task failed", "task", t.Name, "error", err)
		return
	}
	s.logger.Debug("task completed", "task", t.Name, "duration", time.Since(start))
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
