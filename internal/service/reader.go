package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"modsync/internal/domain"
	"modsync/internal/source/reddit"
)

// ListingReader serves the current upstream listing of a tracked community
// through the response cache.
type ListingReader struct {
	source      Source
	cache       ResponseCache
	communities CommunityStore
	logger      *slog.Logger
}

func NewListingReader(source Source, cache ResponseCache, communities CommunityStore, logger *slog.Logger) *ListingReader {
	return &ListingReader{
		source:      source,
		cache:       cache,
		communities: communities,
		logger:      logger.With("component", "listing_reader"),
	}
}

// Current returns the cached listing when fresh, otherwise fetches and caches
// it. Cache failures fall through to upstream.
func (r *ListingReader) Current(ctx context.Context, community string, ct domain.ContentType) (json.RawMessage, error) {
	if !ct.Valid() {
		return nil, fmt.Errorf("unknown content type %q", ct)
	}
	if _, err := r.communities.Get(ctx, community); err != nil {
		return nil, err
	}

	key := ct.CacheKey(community)
	cached, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if ok {
		r.logger.Debug("cache hit", "key", key)
		return cached, nil
	}

	return r.Refresh(ctx, community, ct)
}

// Refresh fetches the listing from upstream and stores it in the cache.
func (r *ListingReader) Refresh(ctx context.Context, community string, ct domain.ContentType) (json.RawMessage, error) {
	listing, err := r.source.Listing(ctx, community, ct, reddit.ListingParams{})
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	raw, err := json.Marshal(listing)
	if err != nil {
		return nil, fmt.Errorf("marshal listing: %w", err)
	}

	key := ct.CacheKey(community)
	if err := r.cache.Set(ctx, key, raw); err != nil {
		r.logger.Warn("cache write failed", "key", key, "error", err)
	}

	return raw, nil
}

// ModqueuePoller keeps the queue items listing of every active community
// warm in the response cache.
type ModqueuePoller struct {
	reader      *ListingReader
	communities CommunityStore
	logger      *slog.Logger
}

func NewModqueuePoller(reader *ListingReader, communities CommunityStore, logger *slog.Logger) *ModqueuePoller {
	return &ModqueuePoller{
		reader:      reader,
		communities: communities,
		logger:      logger.With("component", "modqueue_poller"),
	}
}

// Poll refreshes every active community. A failing community does not stop
// the others; all failures are returned joined.
func (p *ModqueuePoller) Poll(ctx context.Context) error {
	active, err := p.communities.List(ctx, true)
	if err != nil {
		return fmt.Errorf("list active communities: %w", err)
	}

	var errs []error
	for _, c := range active {
		if _, err := p.reader.Refresh(ctx, c.Name, domain.ContentQueueItems); err != nil {
			p.logger.Error("modqueue poll failed", "community", c.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}

	p.logger.Debug("modqueue polled", "communities", len(active), "failed", len(errs))
	return errors.Join(errs...)
}
