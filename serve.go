package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	board "auction-board/internal/boardService"
	"auction-board/internal/catalog"
	"auction-board/internal/config"
	"auction-board/internal/events"
	"auction-board/internal/live"
	"auction-board/internal/metrics"
	"auction-board/internal/server"
	"auction-board/internal/store"
	"auction-board/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		Long: `Start the HTTP server for the auction dashboard.

Flags default to their environment variables (PORT, LOG_LEVEL,
STORE_BACKEND, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_PREFIX,
NATS_URL, INITIAL_USERS).

Examples:
  auction-board serve
  auction-board serve --port=9090 --store=redis --redis-addr=localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			utils.SetLevel(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Port, "port", "p", cfg.Port, "HTTP port")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "Shared store backend (memory or redis)")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address")
	flags.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "Redis password")
	flags.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database")
	flags.StringVar(&cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "Prefix of the Redis keys and events channel")
	flags.StringVar(&cfg.NatsURL, "nats-url", cfg.NatsURL, "NATS server URL; empty disables the event relay")
	flags.IntVar(&cfg.InitialUsers, "initial-users", cfg.InitialUsers, "Number of seed users in a fresh registry")

	return cmd
}

// sharedStore is the store plus the background loop it needs, if any
type sharedStore struct {
	store.Store
	listen func(ctx context.Context) error
	close  func() error
}

// openStore builds the configured backend. Redis stores are pinged and seeded.
func openStore(ctx context.Context, cfg config.Config) (*sharedStore, error) {
	opts := []store.Option{store.WithInitialUsers(store.InitialUsers(cfg.InitialUsers)...)}

	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}

		rs := store.NewRedisStore(client, cfg.RedisPrefix, opts...)
		if err := rs.Seed(ctx); err != nil {
			client.Close()
			return nil, err
		}
		utils.Info("store: using redis", map[string]any{"addr": cfg.RedisAddr, "channel": rs.Channel(), "origin": rs.Origin()})
		return &sharedStore{Store: rs, listen: rs.Listen, close: client.Close}, nil

	default:
		ms := store.NewMemoryStore(opts...)
		utils.Info("store: using memory", map[string]any{"origin": ms.Origin()})
		return &sharedStore{Store: ms}, nil
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	gin.SetMode(gin.ReleaseMode)

	shared, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if shared.close != nil {
		defer shared.close()
	}

	m := metrics.New()
	state, err := shared.State(ctx)
	if err != nil {
		return err
	}
	m.ObserveState(state)
	shared.Subscribe(m.ObserveEvent)

	if cfg.NatsURL != "" {
		conn, relay, err := events.Connect(cfg.NatsURL)
		if err != nil {
			return err
		}
		defer conn.Drain()
		shared.Subscribe(relay.HandleEvent)
		utils.Info("events: relaying store events to NATS", map[string]any{"url": cfg.NatsURL})
	}

	svc := board.NewBoardService(catalog.NewSeededCatalog(time.Now()), shared)
	hub := live.NewHub(shared, m)

	router, err := server.SetupRouter(svc, server.Options{Metrics: m, Hub: hub})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("starting auction board server", map[string]any{"addr": srv.Addr, "store": cfg.StoreBackend, "version": version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		utils.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return hub.Run(gctx)
	})

	if shared.listen != nil {
		g.Go(func() error {
			if err := shared.listen(gctx); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
