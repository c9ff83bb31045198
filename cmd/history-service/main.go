package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/weather-search-history/internal/api/http"
	"github.com/i474232898/weather-search-history/internal/config"
	"github.com/i474232898/weather-search-history/internal/scheduler"
	"github.com/i474232898/weather-search-history/internal/search"
	"github.com/i474232898/weather-search-history/internal/store"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// One store handle for the whole process. A failed connection is logged
	// and the service starts anyway; requests then fail one by one.
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	st, err := store.Open(connectCtx, cfg.StoreURI, store.Options{Database: cfg.MongoDatabase})
	cancelConnect()
	if err != nil {
		log.Printf("ERROR: store connection failed, serving without a store: %v", err)
		st = store.Unavailable(err)
	} else {
		log.Printf("INFO: connected to store")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()
		if err := st.Close(ctx); err != nil {
			log.Printf("WARN: error closing store: %v", err)
		}
	}()

	service := search.NewService(st)

	// Periodic store probe reported on /health.
	sched := scheduler.New(cfg.HealthInterval, cfg.StoreTimeout, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(cfg.AllowedOrigin)
	httpapi.RegisterRoutes(app, service, httpapi.Options{
		StoreTimeout: cfg.StoreTimeout,
		Health:       sched,
	})

	go func() {
		log.Printf("INFO: Server is running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
