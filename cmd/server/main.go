package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sammeh543/CycleTrackApp-sub001/internal"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/api"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/auth"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/config"
	"github.com/sammeh543/CycleTrackApp-sub001/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.DBType == "file" {
		ensureDataFiles(cfg, logger)
	}

	repos, closeStorage, err := storage.NewRepositories(cfg, logger)
	if err != nil {
		logger.Errorf("failed to init storage: %v", err)
		os.Exit(1)
	}

	var provider auth.Provider
	if cfg.Env == "development" {
		provider, err = auth.NewLocalAuthProvider(cfg.FileUsers, logger)
		if err != nil {
			logger.Errorf("failed to load users file: %v", err)
			os.Exit(1)
		}
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	application := api.NewApp(logger, repos)
	api.RegisterRoutes(r, application, auth.AuthMiddleware(provider, cfg))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		logger.Infof("server listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
	if err := closeStorage(); err != nil {
		logger.Errorf("storage close error: %v", err)
	}
}

// ensureDataFiles prepares the data directory for a first run, seeding a
// demo user so the API is usable out of the box in development.
func ensureDataFiles(cfg *config.Config, logger internal.Logger) {
	dir := filepath.Dir(cfg.FileFlow)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warnf("failed to create data dir %s: %v", dir, err)
			return
		}
	}
	if cfg.Env != "development" {
		return
	}
	if _, err := os.Stat(cfg.FileUsers); os.IsNotExist(err) {
		seed := []byte(`[{"id":"u1","token":"MOCK-TOKEN","name":"Demo User"}]`)
		if err := os.WriteFile(cfg.FileUsers, seed, 0644); err != nil {
			logger.Warnf("failed to seed users file: %v", err)
		}
	}
}
