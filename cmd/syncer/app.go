package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"modsync/internal/cache"
	"modsync/internal/config"
	"modsync/internal/domain"
	"modsync/internal/publisher"
	"modsync/internal/scheduler"
	"modsync/internal/service"
	"modsync/internal/source/reddit"
	"modsync/internal/storage/postgres"
	"modsync/internal/token"
)

type app struct {
	cfg    *config.Config
	logger *slog.Logger

	source      *reddit.Client
	cache       service.ResponseCache
	processors  []*service.Processor
	communities *service.Communities
	resetter    *service.Resetter
	reader      *service.ListingReader
	poller      *service.ModqueuePoller

	closers []func() error

	// out receives command results; nil means stdout.
	out io.Writer
}

func newApp(ctx context.Context, cfg *config.Config, db *sqlx.DB, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	communityStore := postgres.NewCommunityStore(db)
	contentStore := postgres.NewContentStore(db)
	statusStore := postgres.NewSyncStatusStore(db)
	resetStore := postgres.NewResetStore(db)
	txManager := postgres.NewTransactionManager(db)

	a.source = reddit.New(reddit.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		TokenURL:     cfg.Upstream.TokenURL,
		UserAgent:    cfg.Upstream.UserAgent,
		ClientID:     cfg.Upstream.ClientID,
		ClientSecret: cfg.Upstream.ClientSecret,
		Username:     cfg.Upstream.Username,
		Password:     cfg.Upstream.Password,
		GrantType:    cfg.Upstream.GrantType,
		Timeout:      cfg.Upstream.Timeout,
		PageSize:     cfg.Upstream.PageSize,
	}, token.NewCache(nil), logger)

	responseCache, err := a.newResponseCache(ctx, db)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cache = responseCache

	pub, err := a.newPublisher()
	if err != nil {
		a.Close()
		return nil, err
	}

	newQueue := service.InMemoryQueues(logger)
	syncers := make([]service.SyncProcessor, 0, len(domain.ContentTypes()))
	for _, ct := range domain.ContentTypes() {
		p := service.NewProcessor(
			ct,
			a.source,
			contentStore,
			statusStore,
			communityStore,
			txManager,
			pub,
			newQueue,
			cfg.Queue,
			cfg.Sync,
			logger,
		)
		a.processors = append(a.processors, p)
		syncers = append(syncers, p)
	}

	a.communities = service.NewCommunities(communityStore, statusStore, contentStore, txManager, syncers, logger)
	a.resetter = service.NewResetter(communityStore, resetStore, txManager, a.cache, syncers, logger)
	a.reader = service.NewListingReader(a.source, a.cache, communityStore, logger)
	a.poller = service.NewModqueuePoller(a.reader, communityStore, logger)

	return a, nil
}

func (a *app) newResponseCache(ctx context.Context, db *sqlx.DB) (service.ResponseCache, error) {
	cfg := a.cfg.Cache

	switch cfg.Backend {
	case "memory":
		return cache.NewMemory(cfg.TTL, nil), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.logger.Info("connected to redis", "addr", cfg.Redis.Addr)
		return cache.NewRedis(client, cfg.Redis.Prefix, cfg.TTL), nil
	default:
		return postgres.NewResponseCache(db, cfg.TTL), nil
	}
}

// newPublisher returns a nil Publisher when publishing is disabled.
func (a *app) newPublisher() (service.Publisher, error) {
	if !a.cfg.RabbitMQ.Enabled() {
		a.logger.Info("rabbitmq url not set, item events disabled")
		return nil, nil
	}

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
	}, a.logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, rabbitMQ.Close)
	return rabbitMQ, nil
}

// run syncs until ctx is done.
func (a *app) run(ctx context.Context) error {
	for _, p := range a.processors {
		p.Start()
	}

	if a.cfg.Sync.ShouldResume() {
		if _, err := a.communities.ResumeAll(ctx); err != nil {
			return fmt.Errorf("resume syncs: %w", err)
		}
	}

	for _, name := range a.cfg.Sync.Communities {
		_, err := a.communities.Track(ctx, name)
		if errors.Is(err, domain.ErrAlreadyTracked) {
			continue
		}
		if err != nil {
			return fmt.Errorf("track %s: %w", name, err)
		}
	}

	cleaners := make([]scheduler.Cleaner, 0, len(a.processors))
	for _, p := range a.processors {
		cleaners = append(cleaners, p)
	}

	sched := scheduler.New(
		scheduler.MaintenanceTasks(a.cfg.Maintenance, a.cache, cleaners, a.poller),
		a.cfg.Maintenance.RunTimeout,
		a.logger,
	)

	a.logger.Info("starting syncer",
		"source", a.source.ID(),
		"cache_backend", a.cfg.Cache.Backend,
		"update_interval", a.cfg.Sync.UpdateInterval,
	)

	return sched.Start(ctx)
}

func (a *app) Close() {
	for _, p := range a.processors {
		p.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close resource", "error", err)
		}
	}
}
