package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"modsync/internal/cache"
	"modsync/internal/domain"
	"modsync/internal/queue"
	"modsync/internal/source/reddit"
)

type Source interface {
	ID() string
	FetchPage(ctx context.Context, community string, ct domain.ContentType, after *string) (*domain.Page, error)
	Listing(ctx context.Context, community string, ct domain.ContentType, params reddit.ListingParams) (*domain.Listing, error)
}

type ContentStore interface {
	InsertNew(ctx context.Context, ct domain.ContentType, items []domain.ContentItem) ([]domain.ContentItem, error)
	List(ctx context.Context, ct domain.ContentType, community string, limit, offset int) (*domain.ItemsPage, error)
}

type SyncStatusStore interface {
	Get(ctx context.Context, community string, ct domain.ContentType) (*domain.SyncStatus, error)
	Save(ctx context.Context, community string, ct domain.ContentType, cursor *string, newItems int) error
	ListForCommunity(ctx context.Context, community string) ([]domain.SyncStatus, error)
}

type CommunityStore interface {
	Create(ctx context.Context, name string) (*domain.TrackedCommunity, error)
	Get(ctx context.Context, name string) (*domain.TrackedCommunity, error)
	List(ctx context.Context, activeOnly bool) ([]domain.TrackedCommunity, error)
	SetActive(ctx context.Context, name string, active bool) error
	Delete(ctx context.Context, name string) error
}

type ResetStore interface {
	PurgeAll(ctx context.Context) (map[string]int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, ct domain.ContentType, item *domain.ContentItem) error
	Close() error
}

type ResponseCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (cache.Stats, error)
	Sweep(ctx context.Context) (int, error)
}

// JobQueue is the queue backend a Processor drives.
type JobQueue interface {
	Name() string
	Add(ctx context.Context, payload domain.SyncJob, opts queue.JobOptions) (string, error)
	Status(id string) queue.JobStatus
	RemoveWhere(match func(domain.SyncJob) bool) int
	Clean(grace time.Duration) int
	Start()
	Pause()
	Resume()
	Close()
}

type SyncProcessor interface {
	ContentType() domain.ContentType
	EnqueueInitialSync(ctx context.Context, community string) (string, error)
	CancelAllJobsFor(community string) int
	Pause()
	Resume()
}
