package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/DhavalSuthar-24/acecourt/config"
	_ "github.com/DhavalSuthar-24/acecourt/docs"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/metrics"
	"github.com/DhavalSuthar-24/acecourt/internal/seed"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/memory"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/relational"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
	"github.com/DhavalSuthar-24/acecourt/pkg/validator"
	"github.com/DhavalSuthar-24/acecourt/routes"
)

const shutdownTimeout = 10 * time.Second

// @title AceCourt Academy API
// @version 1.0
// @description Tennis academy management with AI coaching assistance.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if err := validator.RegisterTags(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, loc, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Storage.Seed {
		if _, err := seed.Load(ctx, store, clock.WallClock, log); err != nil {
			return err
		}
	}

	c, err := openCache(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	collector := metrics.NewCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collector,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := routes.SetupRoutes(routes.Dependencies{
		Config:   cfg,
		Store:    store,
		Cache:    c,
		Advisor:  newAdvisor(cfg, c, collector, log),
		Metrics:  collector,
		Gatherer: registry,
		Clock:    clock.WallClock,
		Location: loc,
		Logger:   log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("port", cfg.App.Port), slog.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStorage(ctx context.Context, cfg *config.Config, loc *time.Location, log *slog.Logger) (*storage.Service, error) {
	svcConfig := storage.ServiceConfig{Location: loc, Logger: log}
	if cfg.Storage.Backend == "memory" {
		log.Info("using in-memory storage, data is lost on restart")
		return storage.NewService(memory.New(), svcConfig), nil
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	backend := relational.New(db)
	if err := backend.Migrate(ctx); err != nil {
		_ = backend.Close()
		return nil, err
	}
	log.Info("database migrated")
	return storage.NewService(backend, svcConfig), nil
}

func openCache(cfg *config.Config, log *slog.Logger) (cache.Cache, error) {
	if cfg.Redis.Addr == "" {
		return cache.NewMemory(clock.WallClock), nil
	}
	c, err := cache.NewRedis(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, "acecourt:")
	if err != nil {
		return nil, err
	}
	log.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))
	return c, nil
}

// newAdvisor layers the drill cache and the offline fallbacks over the model
// client. Without an API key every call goes straight to the fallbacks.
func newAdvisor(cfg *config.Config, c cache.Cache, collector *metrics.Collector, log *slog.Logger) advisor.Advisor {
	var model advisor.Advisor = advisor.Offline{}
	if cfg.AI.APIKey != "" {
		model = advisor.NewOpenAI(advisor.OpenAIConfig{
			APIKey:            cfg.AI.APIKey,
			BaseURL:           cfg.AI.BaseURL,
			Model:             cfg.AI.Model,
			RequestsPerMinute: cfg.AI.RequestsPerMinute,
		})
	}
	cached := advisor.NewCachedDrills(model, c, cfg.AI.DrillCacheTTL, cfg.AI.Timeout, log)
	return advisor.WithFallback(cached, collector, log)
}
