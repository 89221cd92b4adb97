package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/duramedstack/duramed-sla/internal/api"
	"github.com/duramedstack/duramed-sla/internal/cache"
	"github.com/duramedstack/duramed-sla/internal/config"
	"github.com/duramedstack/duramed-sla/internal/engine"
	"github.com/duramedstack/duramed-sla/internal/metrics"
	"github.com/duramedstack/duramed-sla/internal/policy"
	"github.com/duramedstack/duramed-sla/internal/repo"
	"github.com/duramedstack/duramed-sla/internal/services"
	"github.com/duramedstack/duramed-sla/internal/tasks"
	"github.com/duramedstack/duramed-sla/internal/utils"
	"github.com/duramedstack/duramed-sla/internal/validate"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("path", configPath), slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	logger.Info("starting duramed-sla", slog.String("address", cfg.Server.Address))

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	var cacheProvider cache.Provider = cache.NoopProvider{}
	var redisCloser cache.Provider
	if cfg.Cache.Enabled && cfg.Cache.Addr != "" {
		provider, err := cache.NewRedisProvider(cache.RedisConfig{
			Addr:         cfg.Cache.Addr,
			Username:     cfg.Cache.Username,
			Password:     cfg.Cache.Password,
			DB:           cfg.Cache.DB,
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
			MaxRetries:   cfg.Cache.MaxRetries,
			TLS:          cfg.Cache.TLS,
		})
		if err != nil {
			logger.Warn("redis cache unavailable", slog.Any("error", err))
		} else {
			cacheProvider = provider
			redisCloser = provider
		}
	}
	if redisCloser != nil {
		defer redisCloser.Close()
	}

	var taskStore tasks.Store
	if cfg.TaskStore.BaseURL != "" {
		taskStore = repo.NewTaskStoreClient(
			cfg.TaskStore.BaseURL,
			cfg.TaskStore.TasksPath,
			cfg.TaskStore.Timeout,
			cacheProvider,
			cfg.TaskStore.TaskTTL,
		)
	} else {
		sqliteStore, err := tasks.NewSQLiteStore(cfg.TaskStore.SQLitePath)
		if err != nil {
			logger.Error("failed to open embedded task store", slog.Any("error", err))
			os.Exit(1)
		}
		defer sqliteStore.Close()
		taskStore = sqliteStore
		logger.Info("using embedded task store", slog.String("path", cfg.TaskStore.SQLitePath))
	}

	specs, policyVersion, err := policy.LoadPack(cfg.Policy.Path)
	if err != nil {
		logger.Error("failed to load policy pack", slog.String("path", cfg.Policy.Path), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("policy pack loaded", slog.String("version", policyVersion), slog.Int("specs", len(specs)))

	validator, err := validate.NewEventValidator()
	if err != nil {
		logger.Error("failed to compile event schema", slog.Any("error", err))
		os.Exit(1)
	}

	evaluator := engine.NewEvaluator(logger)
	bridge := tasks.NewBridge(logger, taskStore, cacheProvider, cfg.TaskStore.LockTTL)

	slaService := services.NewSLAService(logger, evaluator, bridge, validator, specs, policyVersion)

	server, err := api.NewServer(cfg.Server, slaService)
	if err != nil {
		logger.Error("failed to create gRPC server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Server.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         cfg.Server.MetricsAddress,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", slog.String("address", cfg.Server.MetricsAddress))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server exited", slog.Any("error", err))
				stop()
			}
		}()
	}

	go func() {
		if serveErr := server.Start(); serveErr != nil {
			logger.Error("gRPC server exited", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
	defer cancel()
	server.Shutdown(shutdownCtx)

	if metricsServer != nil {
		metricsCtx, cancelMetrics := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(metricsCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
		cancelMetrics()
	}

	// Give remaining goroutines time to finish logging
	time.Sleep(100 * time.Millisecond)
	logger.Info("duramed-sla stopped")
}
