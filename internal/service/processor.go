package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"modsync/internal/config"
	"modsync/internal/domain"
	"modsync/internal/queue"
)

// QueueFactory builds the queue named name that dispatches to handler.
type QueueFactory func(name string, handler queue.Handler[domain.SyncJob], opts queue.Options) JobQueue

// InMemoryQueues builds in-process queues.
func InMemoryQueues(logger *slog.Logger) QueueFactory {
	return func(name string, handler queue.Handler[domain.SyncJob], opts queue.Options) JobQueue {
		return queue.New(name, handler, opts, logger)
	}
}

type Action int

const (
	ActionNextPage Action = iota
	ActionCaughtUp
)

// Decision is what a crawl does after one page.
type Decision struct {
	Action Action
	Delay  time.Duration
}

// Decide picks the next step from a synced page. More pages with nothing
// already stored continue after short; any duplicate means the crawl reached
// known data and continues after long.
func Decide(stats *domain.SyncStats, short, long time.Duration) Decision {
	if stats.NextCursor == nil || *stats.NextCursor == "" {
		return Decision{Action: ActionCaughtUp}
	}
	if stats.AllNew() {
		return Decision{Action: ActionNextPage, Delay: short}
	}
	return Decision{Action: ActionNextPage, Delay: long}
}

// SyncResult is the return value recorded on a completed sync job.
type SyncResult struct {
	Stats   *domain.SyncStats `json:"stats,omitempty"`
	Skipped bool              `json:"skipped,omitempty"`

	next time.Duration
}

func (r SyncResult) RepeatDelay() time.Duration {
	return r.next
}

func (r SyncResult) StopRepeat() bool {
	return r.Skipped
}

// Processor crawls one content type for every tracked community.
type Processor struct {
	contentType domain.ContentType
	source      Source
	content     ContentStore
	status      SyncStatusStore
	communities CommunityStore
	txManager   TransactionManager
	publisher   Publisher
	cfg         config.SyncConfig
	logger      *slog.Logger

	initial JobQueue
	updates JobQueue
}

func NewProcessor(
	ct domain.ContentType,
	source Source,
	content ContentStore,
	status SyncStatusStore,
	communities CommunityStore,
	txManager TransactionManager,
	publisher Publisher,
	newQueue QueueFactory,
	queueCfg config.QueueConfig,
	cfg config.SyncConfig,
	logger *slog.Logger,
) *Processor {
	p := &Processor{
		contentType: ct,
		source:      source,
		content:     content,
		status:      status,
		communities: communities,
		txManager:   txManager,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger.With("content_type", ct, "source", source.ID()),
	}

	base := queue.Options{
		Attempts:     queueCfg.Attempts,
		BackoffBase:  queueCfg.BackoffBase,
		MaxBackoff:   queueCfg.MaxBackoff,
		PollInterval: queueCfg.PollInterval,
	}

	initialOpts := base
	initialOpts.MaxParallel = queueCfg.InitialParallel
	p.initial = newQueue(InitialQueueName(ct), p.Handle, initialOpts)

	updateOpts := base
	updateOpts.MaxParallel = queueCfg.UpdateParallel
	p.updates = newQueue(UpdateQueueName(ct), p.Handle, updateOpts)

	return p
}

func InitialQueueName(ct domain.ContentType) string {
	return string(ct) + "-initial-sync"
}

func UpdateQueueName(ct domain.ContentType) string {
	return string(ct) + "-updates"
}

func (p *Processor) ContentType() domain.ContentType {
	return p.contentType
}

// EnqueueInitialSync starts a crawl of community from its persisted cursor.
func (p *Processor) EnqueueInitialSync(ctx context.Context, community string) (string, error) {
	id, err := p.initial.Add(ctx, domain.SyncJob{
		CommunityName: community,
		Mode:          domain.ModeInitial,
	}, queue.JobOptions{})
	if err != nil {
		return "", fmt.Errorf("enqueue initial sync: %w", err)
	}

	p.logger.Info("initial sync enqueued", "community", community, "job_id", id)
	return id, nil
}

// JobStatus looks a job up in both queues.
func (p *Processor) JobStatus(id string) queue.JobStatus {
	if st := p.initial.Status(id); st.Status != queue.StatusNotFound {
		return st
	}
	return p.updates.Status(id)
}

// CancelAllJobsFor removes every pending job of community, including its
// recurring update job.
func (p *Processor) CancelAllJobsFor(community string) int {
	match := func(job domain.SyncJob) bool {
		return job.CommunityName == community
	}
	n := p.initial.RemoveWhere(match) + p.updates.RemoveWhere(match)

	p.logger.Info("jobs cancelled", "community", community, "count", n)
	return n
}

func (p *Processor) Start() {
	p.initial.Start()
	p.updates.Start()
}

func (p *Processor) Pause() {
	p.initial.Pause()
	p.updates.Pause()
}

func (p *Processor) Resume() {
	p.initial.Resume()
	p.updates.Resume()
}

func (p *Processor) Close() {
	p.initial.Close()
	p.updates.Close()
}

// Clean purges finished jobs older than grace from both queues.
func (p *Processor) Clean(grace time.Duration) int {
	return p.initial.Clean(grace) + p.updates.Clean(grace)
}

// Handle runs one crawl step. It is the handler of both queues.
func (p *Processor) Handle(ctx context.Context, job queue.Job[domain.SyncJob]) (any, error) {
	payload := job.Payload
	logger := p.logger.With(
		"community", payload.CommunityName,
		"mode", payload.Mode,
		"job_id", job.ID,
	)

	active, err := p.isActive(ctx, payload.CommunityName)
	if err != nil {
		return nil, err
	}
	if !active {
		logger.Info("community not tracked or inactive, skipping")
		return SyncResult{Skipped: true}, nil
	}

	stats, err := p.syncPage(ctx, payload, logger)
	if err != nil {
		return nil, err
	}
	job.UpdateProgress(100)

	decision := Decide(stats, p.cfg.ShortDelay, p.cfg.LongDelay)

	if payload.Mode == domain.ModeUpdate {
		next := p.cfg.UpdateInterval
		if decision.Action == ActionNextPage {
			next = decision.Delay
		}
		return SyncResult{Stats: stats, next: next}, nil
	}

	if decision.Action == ActionNextPage {
		id, err := p.initial.Add(ctx, domain.SyncJob{
			CommunityName: payload.CommunityName,
			After:         stats.NextCursor,
			Mode:          domain.ModeInitial,
		}, queue.JobOptions{Delay: decision.Delay})
		if err != nil {
			return nil, fmt.Errorf("enqueue next page: %w", err)
		}
		logger.Debug("next page enqueued", "job_id", id, "after", *stats.NextCursor, "delay", decision.Delay)
		return SyncResult{Stats: stats}, nil
	}

	id, err := p.updates.Add(ctx, domain.SyncJob{
		CommunityName: payload.CommunityName,
		Mode:          domain.ModeUpdate,
	}, queue.JobOptions{
		Repeat: p.cfg.UpdateInterval,
		Key:    payload.CommunityName,
	})
	if err != nil {
		return nil, fmt.Errorf("register updates: %w", err)
	}
	logger.Info("initial sync caught up, updates registered", "job_id", id, "interval", p.cfg.UpdateInterval)

	return SyncResult{Stats: stats}, nil
}

func (p *Processor) isActive(ctx context.Context, community string) (bool, error) {
	c, err := p.communities.Get(ctx, community)
	if errors.Is(err, domain.ErrCommunityNotFound) {
		return false, nil
	}
	if err != nil {
		return false, persistenceError("load community", err)
	}
	return c.IsActive, nil
}

// syncPage fetches one page and stores its new items together with the next
// cursor.
func (p *Processor) syncPage(ctx context.Context, payload domain.SyncJob, logger *slog.Logger) (*domain.SyncStats, error) {
	start := time.Now()

	cursor := payload.After
	if cursor == nil {
		status, err := p.status.Get(ctx, payload.CommunityName, p.contentType)
		if err != nil {
			return nil, persistenceError("load sync status", err)
		}
		cursor = status.Cursor
	}

	page, err := p.source.FetchPage(ctx, payload.CommunityName, p.contentType, cursor)
	if err != nil {
		logger.Warn("fetch page failed", "error", err, "retryable", retryable(err))
		return nil, upstreamError(err)
	}

	next := page.After
	if !page.HasMore() {
		next = nil
	}

	var inserted []domain.ContentItem
	err = p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		rows, err := p.content.InsertNew(txCtx, p.contentType, page.Items)
		if err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
		inserted = rows

		if err := p.status.Save(txCtx, payload.CommunityName, p.contentType, next, len(rows)); err != nil {
			return fmt.Errorf("save cursor: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError("store page", err)
	}

	stats := &domain.SyncStats{
		CommunityName: payload.CommunityName,
		ContentType:   p.contentType,
		Mode:          payload.Mode,
		Fetched:       len(page.Items),
		New:           len(inserted),
		Duplicates:    len(page.Items) - len(inserted),
		NextCursor:    next,
	}
	stats.Published = p.publish(ctx, inserted, logger)
	stats.Duration = time.Since(start)

	logger.Info("page synced",
		"fetched", stats.Fetched,
		"new", stats.New,
		"duplicates", stats.Duplicates,
		"published", stats.Published,
		"has_more", next != nil,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (p *Processor) publish(ctx context.Context, items []domain.ContentItem, logger *slog.Logger) int {
	if p.publisher == nil {
		return 0
	}

	published := 0
	for i := range items {
		if err := p.publisher.Publish(ctx, p.contentType, &items[i]); err != nil {
			logger.Warn("failed to publish item",
				"unique_name", items[i].UniqueName,
				"error", err,
			)
			continue
		}
		published++
	}
	return published
}
