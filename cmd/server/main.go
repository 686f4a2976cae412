package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitk-cp/tenancy/internal/api"
	"github.com/Harshitk-cp/tenancy/internal/buildconfig"
	"github.com/Harshitk-cp/tenancy/internal/config"
	"github.com/Harshitk-cp/tenancy/internal/logger"
	"github.com/Harshitk-cp/tenancy/internal/store"
	"go.uber.org/zap"
)

func main() {
	_ = config.Load()

	log, err := logger.New(logger.Config{
		Level:   config.LogLevel(),
		Dev:     config.LogDev(),
		File:    config.LogFile(),
		Version: buildconfig.Version(),
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dbURL := config.DatabaseURL()
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.NewPool(ctx, store.PoolConfig{
		ConnString: dbURL,
		MaxConns:   config.DBMaxConns(),
		MinConns:   config.DBMinConns(),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	log.Info("connected to database")

	if config.AutoMigrate() {
		if err := store.Migrate(ctx, pool, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	app, err := api.NewApp(ctx, pool, log)
	if err != nil {
		log.Fatal("failed to build application", zap.Error(err))
	}

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		info := buildconfig.Current()
		log.Info("server starting", zap.String("addr", addr), zap.String("commit", info.Commit), zap.String("build_date", info.BuildDate))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
