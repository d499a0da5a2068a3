package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmed-elbehidy/bill-management-system/internal/config"
	"github.com/ahmed-elbehidy/bill-management-system/internal/logger"
	"github.com/ahmed-elbehidy/bill-management-system/internal/store"
	"github.com/joho/godotenv"
)

var (
	initOnlyFlag = flag.Bool("init-only", false, "Create the database schema and exit")
	historyFlag  = flag.Bool("history", false, "Print all orders grouped by date and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger().Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.App.Dev, cfg.Log.Level); err != nil {
		logger.GetLogger().Fatalf("Failed to init logger: %v", err)
	}
	log := logger.GetLogger()
	defer logger.Sync()

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Database.Path, cfg.Database.Debug)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", cfg.Database.Path, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Errorw("Error closing database", "error", err)
		}
	}()

	if *initOnlyFlag {
		log.Infow("Database initialized", "path", cfg.Database.Path)
		return
	}

	app := NewApp(cfg, st)

	if *historyFlag {
		if err := app.PrintHistory(ctx, os.Stdout); err != nil {
			log.Errorw("Failed to print history", "error", err)
		}
		return
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Bill management UI listening", "url", "http://"+srv.Addr, "db", cfg.Database.Path, "menu_items", len(cfg.Menu))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errCh:
		log.Errorw("Server error", "error", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Error during shutdown", "error", err)
	}
	log.Info("Server stopped gracefully")
}
