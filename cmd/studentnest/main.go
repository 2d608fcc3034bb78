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

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/studentnest/internal/config"
	dbRedis "github.com/kailas-cloud/studentnest/internal/db/redis"
	"github.com/kailas-cloud/studentnest/internal/db/sqlite"
	logpkg "github.com/kailas-cloud/studentnest/internal/logger"
	"github.com/kailas-cloud/studentnest/internal/metrics"
	"github.com/kailas-cloud/studentnest/internal/repository/catalog"
	recordrepo "github.com/kailas-cloud/studentnest/internal/repository/record"
	chiTransport "github.com/kailas-cloud/studentnest/internal/transport/chi"
	"github.com/kailas-cloud/studentnest/internal/version"
	askuc "github.com/kailas-cloud/studentnest/internal/usecase/ask"
	browseuc "github.com/kailas-cloud/studentnest/internal/usecase/browse"
	healthuc "github.com/kailas-cloud/studentnest/internal/usecase/health"
	recorduc "github.com/kailas-cloud/studentnest/internal/usecase/record"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting StudentNest API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.Int("records", cat.Len()))

	ctx := context.Background()
	repo, pinger, closeStore, err := openRecordStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open record store", zap.Error(err))
	}
	defer closeStore()

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register metrics", zap.Error(err))
	}

	askSvc := askuc.New(cat, nil, metrics.AskObserver{})
	browseSvc := browseuc.New(cat)
	recordSvc := recorduc.New(repo)
	healthSvc := healthuc.New(cat, pinger)

	server := chiTransport.NewServer(askSvc, browseSvc, recordSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, logger, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openRecordStore builds the record repository for the configured driver.
// With driver "none" the repository and pinger are nil and record endpoints answer 501.
func openRecordStore(ctx context.Context, cfg config.Config) (recorduc.Repository, healthuc.DBPinger, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverValkey, config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect %s: %w", cfg.Database.Driver, err)
		}
		timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return nil, nil, nil, fmt.Errorf("database not ready: %w", err)
		}
		return recordrepo.New(store, cfg.Storage.KeyPrefix), store, store.Close, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		repo, err := recordrepo.NewSQL(ctx, store.DB())
		if err != nil {
			store.Close()
			return nil, nil, nil, err
		}
		return repo, store, store.Close, nil

	default:
		return nil, nil, func() {}, nil
	}
}
