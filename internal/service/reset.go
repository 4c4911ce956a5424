package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ResetReport summarizes a bulk reset.
type ResetReport struct {
	Communities   int              `json:"communities"`
	CancelledJobs int              `json:"cancelledJobs"`
	DeletedRows   map[string]int64 `json:"deletedRows"`
	Duration      time.Duration    `json:"duration"`
}

// Resetter wipes every tracked community and all synced data.
type Resetter struct {
	communities CommunityStore
	resets      ResetStore
	txManager   TransactionManager
	cache       ResponseCache
	processors  []SyncProcessor
	logger      *slog.Logger
}

func NewResetter(
	communities CommunityStore,
	resets ResetStore,
	txManager TransactionManager,
	cache ResponseCache,
	processors []SyncProcessor,
	logger *slog.Logger,
) *Resetter {
	return &Resetter{
		communities: communities,
		resets:      resets,
		txManager:   txManager,
		cache:       cache,
		processors:  processors,
		logger:      logger.With("component", "reset"),
	}
}

// Reset runs with dispatch paused. Jobs already running when it starts find
// their community gone and finish as no-ops.
func (r *Resetter) Reset(ctx context.Context) (*ResetReport, error) {
	start := time.Now()

	for _, p := range r.processors {
		p.Pause()
	}
	defer func() {
		for _, p := range r.processors {
			p.Resume()
		}
	}()

	tracked, err := r.communities.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}

	report := &ResetReport{Communities: len(tracked)}
	for _, c := range tracked {
		for _, p := range r.processors {
			report.CancelledJobs += p.CancelAllJobsFor(c.Name)
		}
	}

	err = r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		counts, err := r.resets.PurgeAll(txCtx)
		if err != nil {
			return err
		}
		report.DeletedRows = counts
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("purge data: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear response cache: %w", err)
		}
	}

	report.Duration = time.Since(start)
	r.logger.Info("reset completed",
		"communities", report.Communities,
		"cancelled_jobs", report.CancelledJobs,
		"duration", report.Duration,
	)

	return report, nil
}
