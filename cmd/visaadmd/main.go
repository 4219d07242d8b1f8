package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visa-admin-backend/config"
	"visa-admin-backend/internal/api"
	"visa-admin-backend/internal/cache"
	"visa-admin-backend/internal/mw"
	"visa-admin-backend/internal/remote"
	"visa-admin-backend/internal/service"
)

func main() {
	logger := log.New(os.Stdout, "visa-admin ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Session.Secret == "" {
		logger.Fatalf("session.secret must be configured")
	}

	rc := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.APIKey, cfg.Remote.Timeout)
	logger.Printf("remote client targeting %s", cfg.Remote.BaseURL)

	store := cache.New(
		time.Duration(cfg.Server.CacheStaleSeconds)*time.Second,
		time.Duration(cfg.Server.CacheTTLSeconds)*time.Second,
	)

	applicants := service.NewApplicantService(rc, store)
	reSchedules := service.NewReScheduleService(rc, store)
	configuration := service.NewConfigurationService(rc, store)

	sessions := mw.NewSessionManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.MaxAgeSeconds)

	router := api.NewRouter(cfg, rc, applicants, reSchedules, configuration, sessions)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
