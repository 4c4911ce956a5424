package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"modsync/internal/domain"
)

const (
	defaultItemsLimit = 100
	maxItemsLimit     = 100
)

var communityNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,21}$`)

// CommunityDetails is a tracked community with its per-feed sync status.
type CommunityDetails struct {
	Community *domain.TrackedCommunity `json:"community"`
	Statuses  []domain.SyncStatus      `json:"statuses"`
}

// TrackResult lists the initial sync job started per content type.
type TrackResult struct {
	Community *domain.TrackedCommunity      `json:"community"`
	JobIDs    map[domain.ContentType]string `json:"jobIds"`
}

// Communities manages the tracked community registry and the sync jobs that
// follow it.
type Communities struct {
	store      CommunityStore
	statuses   SyncStatusStore
	content    ContentStore
	txManager  TransactionManager
	processors []SyncProcessor
	logger     *slog.Logger
}

func NewCommunities(
	store CommunityStore,
	statuses SyncStatusStore,
	content ContentStore,
	txManager TransactionManager,
	processors []SyncProcessor,
	logger *slog.Logger,
) *Communities {
	return &Communities{
		store:      store,
		statuses:   statuses,
		content:    content,
		txManager:  txManager,
		processors: processors,
		logger:     logger.With("component", "communities"),
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "r/")
	if !communityNamePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCommunityName, name)
	}
	return name, nil
}

// Track registers a community and starts its initial sync for every content
// type. domain.ErrAlreadyTracked is returned for a known name.
func (c *Communities) Track(ctx context.Context, name string) (*TrackResult, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	community, err := c.store.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	jobIDs, err := c.enqueueAll(ctx, name)
	if err != nil {
		return nil, err
	}

	c.logger.Info("community tracked", "community", name, "jobs", len(jobIDs))
	return &TrackResult{Community: community, JobIDs: jobIDs}, nil
}

func (c *Communities) Get(ctx context.Context, name string) (*CommunityDetails, error) {
	community, err := c.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	statuses, err := c.statuses.ListForCommunity(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list sync status: %w", err)
	}

	return &CommunityDetails{Community: community, Statuses: statuses}, nil
}

func (c *Communities) List(ctx context.Context) ([]domain.TrackedCommunity, error) {
	return c.store.List(ctx, false)
}

// Items returns stored items of one feed, newest first.
func (c *Communities) Items(ctx context.Context, name string, ct domain.ContentType, limit, offset int) (*domain.ItemsPage, error) {
	if !ct.Valid() {
		return nil, fmt.Errorf("unknown content type %q", ct)
	}
	if _, err := c.store.Get(ctx, name); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultItemsLimit
	}
	limit = min(limit, maxItemsLimit)
	offset = max(offset, 0)

	return c.content.List(ctx, ct, name, limit, offset)
}

// Deactivate stops syncing a community without deleting its data.
func (c *Communities) Deactivate(ctx context.Context, name string) error {
	if err := c.store.SetActive(ctx, name, false); err != nil {
		return err
	}

	cancelled := c.cancelJobs(name)
	c.logger.Info("community deactivated", "community", name, "cancelled_jobs", cancelled)
	return nil
}

// Activate re-enables a community and resumes its crawl from the persisted
// cursors. An already active community keeps its running jobs and no new
// ones are started.
func (c *Communities) Activate(ctx context.Context, name string) (map[domain.ContentType]string, error) {
	community, err := c.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if community.IsActive {
		c.logger.Info("community already active", "community", name)
		return map[domain.ContentType]string{}, nil
	}

	if err := c.store.SetActive(ctx, name, true); err != nil {
		return nil, err
	}

	// Drop anything left over from before the deactivation so only one
	// crawl writes the cursors.
	c.cancelJobs(name)

	jobIDs, err := c.enqueueAll(ctx, name)
	if err != nil {
		return nil, err
	}

	c.logger.Info("community activated", "community", name, "jobs", len(jobIDs))
	return jobIDs, nil
}

// Delete removes a community with all of its stored data.
func (c *Communities) Delete(ctx context.Context, name string) error {
	err := c.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return c.store.Delete(txCtx, name)
	})
	if err != nil {
		return err
	}

	cancelled := c.cancelJobs(name)
	c.logger.Info("community deleted", "community", name, "cancelled_jobs", cancelled)
	return nil
}

// ResumeAll enqueues an initial sync for every active community. Crawls
// continue from their persisted cursors.
func (c *Communities) ResumeAll(ctx context.Context) (int, error) {
	communities, err := c.store.List(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("list active communities: %w", err)
	}

	for _, community := range communities {
		if _, err := c.enqueueAll(ctx, community.Name); err != nil {
			return 0, err
		}
	}

	c.logger.Info("resumed syncs", "communities", len(communities))
	return len(communities), nil
}

func (c *Communities) enqueueAll(ctx context.Context, name string) (map[domain.ContentType]string, error) {
	jobIDs := make(map[domain.ContentType]string, len(c.processors))
	for _, p := range c.processors {
		id, err := p.EnqueueInitialSync(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.ContentType(), err)
		}
		jobIDs[p.ContentType()] = id
	}
	return jobIDs, nil
}

func (c *Communities) cancelJobs(name string) int {
	n := 0
	for _, p := range c.processors {
		n += p.CancelAllJobsFor(name)
	}
	return n
}
