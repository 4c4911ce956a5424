package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"modsync/internal/config"
	"modsync/internal/domain"
	"modsync/internal/storage/postgres"
)

const usage = `usage: syncer [-config path] [command]

commands:
  run                          sync tracked communities (default)
  track <name>...              track communities; a running syncer picks them up on restart
  deactivate <name>            stop syncing a community, keep its data
  activate <name>              resume syncing a community
  delete <name>                delete a community and its data
  status <name>                show a community and its sync cursors
  items <name> <type> [limit] [offset]
                               list stored items (type: queueItems, comments, posts)
  listing <name> <type>        show the current upstream listing through the cache
  reset                        delete every community and all synced data
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if err := postgres.Migrate(ctx, db, logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	a, err := newApp(ctx, cfg, db, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	err = a.dispatch(ctx, flag.Args())
	a.Close()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.run(ctx)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "run":
		return a.run(ctx)
	case "track":
		if len(args) == 0 {
			return errUsage
		}
		for _, name := range args {
			result, err := a.communities.Track(ctx, name)
			if err != nil {
				return fmt.Errorf("track %s: %w", name, err)
			}
			// The process exits before its queues drain, so the job ids
			// are not shown. "run" resumes the crawl.
			if err := a.printJSON(result.Community); err != nil {
				return err
			}
		}
		return nil
	case "deactivate":
		if len(args) != 1 {
			return errUsage
		}
		return a.communities.Deactivate(ctx, args[0])
	case "activate":
		if len(args) != 1 {
			return errUsage
		}
		_, err := a.communities.Activate(ctx, args[0])
		return err
	case "delete":
		if len(args) != 1 {
			return errUsage
		}
		return a.communities.Delete(ctx, args[0])
	case "status":
		if len(args) != 1 {
			return errUsage
		}
		details, err := a.communities.Get(ctx, args[0])
		if err != nil {
			return err
		}
		return a.printJSON(details)
	case "items":
		return a.items(ctx, args)
	case "listing":
		if len(args) != 2 {
			return errUsage
		}
		raw, err := a.reader.Current(ctx, args[0], domain.ContentType(args[1]))
		if err != nil {
			return err
		}
		return a.printJSON(raw)
	case "reset":
		report, err := a.resetter.Reset(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(report)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

var errUsage = errors.New("invalid arguments, see -h")

func (a *app) items(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return errUsage
	}

	var limit, offset int
	var err error
	if len(args) > 2 {
		if limit, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("parse limit: %w", err)
		}
	}
	if len(args) > 3 {
		if offset, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("parse offset: %w", err)
		}
	}

	page, err := a.communities.Items(ctx, args[0], domain.ContentType(args[1]), limit, offset)
	if err != nil {
		return err
	}
	return a.printJSON(page)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.output())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) output() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
