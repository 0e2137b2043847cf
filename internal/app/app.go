package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aventura-edu/backend/internal/config"
	"github.com/aventura-edu/backend/internal/content"
	"github.com/aventura-edu/backend/internal/distractor"
	"github.com/aventura-edu/backend/internal/game"
	"github.com/aventura-edu/backend/internal/game/gemini"
	"github.com/aventura-edu/backend/internal/logging"
	"github.com/aventura-edu/backend/internal/server"
	"github.com/aventura-edu/backend/internal/store"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	prewarmWorker *game.PrewarmWorker
	prewarmQueue  chan game.GameParameters
	repo          *store.Repo
	bgCancels     []context.CancelFunc
}

// New bootstraps config, logger, optional Postgres/Redis, the Gemini client
// and the content pipeline. Every external dependency is optional: a missing
// backend just removes its tier from the fallback chain.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	var pool *pgxpool.Pool
	if cfg.Postgres.Enabled() {
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.DSN()+"&pool_max_conns=10")
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
	} else {
		logger.Warn().Msg("postgres not configured; persistent store tier disabled")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
	} else {
		logger.Warn().Msg("redis not configured; hot cache disabled")
	}

	synth := distractor.New()

	var remote game.RemoteGenerator
	if cfg.Gemini.APIKey != "" {
		remote = gemini.NewClient(gemini.Config{
			APIKey:     cfg.Gemini.APIKey,
			Model:      cfg.Gemini.Model,
			Timeout:    cfg.Gemini.Timeout,
			MaxRetries: cfg.Gemini.MaxRetries,
		}, synth, logger)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; remote tier disabled")
	}

	var (
		contentStore game.ContentStore
		repo         *store.Repo
	)
	if pool != nil || redisClient != nil {
		var cache *store.Cache
		if redisClient != nil {
			cache = store.NewCache(redisClient, cfg.Content.RedisTTL)
		}
		if pool != nil {
			repo = store.NewRepo(pool, cfg.Content.StoreTTL)
		}
		contentStore = store.NewClient(cache, repo, logger)
	}

	library := content.NewLibrary()
	metrics := game.NewMetrics(prometheus.DefaultRegisterer)
	gameSvc := game.NewService(remote, contentStore, library, synth, logger, metrics)

	var (
		prewarmQueue  chan game.GameParameters
		prewarmWorker *game.PrewarmWorker
	)
	if remote != nil && contentStore != nil {
		prewarmQueue = make(chan game.GameParameters, cfg.Content.PrewarmQueueSize)
		prewarmWorker = game.NewPrewarmWorker(remote, contentStore, prewarmQueue, logger, cfg.Content.PrewarmTimeout)
	}

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, gameSvc, prewarmQueue)

	return &Application{
		cfg:           cfg,
		logger:        logger,
		pool:          pool,
		redis:         redisClient,
		http:          apiServer,
		prewarmWorker: prewarmWorker,
		prewarmQueue:  prewarmQueue,
		repo:          repo,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	if a.prewarmWorker != nil {
		go a.prewarmWorker.Run()
	}
	a.startPurgeWorker(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if a.prewarmWorker != nil {
		a.prewarmWorker.Stop()
	}
	for _, cancel := range a.bgCancels {
		cancel()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

// startPurgeWorker periodically evicts expired rows from the content store.
func (a *Application) startPurgeWorker(ctx context.Context) {
	if a.repo == nil || a.cfg.Content.PurgeInterval <= 0 {
		return
	}
	bgCtx, cancel := context.WithCancel(ctx)
	a.bgCancels = append(a.bgCancels, cancel)
	go func() {
		ticker := time.NewTicker(a.cfg.Content.PurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-bgCtx.Done():
				return
			case <-ticker.C:
				removed, err := a.repo.PurgeExpired(bgCtx)
				if err != nil {
					a.logger.Warn().Err(err).Msg("content purge failed")
					continue
				}
				if removed > 0 {
					a.logger.Info().Int("removed", removed).Msg("expired content purged")
				}
			}
		}
	}()
}
