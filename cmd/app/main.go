package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pawfinder/internal/assist"
	"pawfinder/internal/bus"
	"pawfinder/internal/cart"
	"pawfinder/internal/catalog"
	"pawfinder/internal/config"
	"pawfinder/internal/feedback"
	"pawfinder/internal/history"
	"pawfinder/internal/httpserver"
	"pawfinder/internal/identity"
	"pawfinder/internal/orders"
	"pawfinder/internal/reconcile"
	"pawfinder/internal/router"
	"pawfinder/internal/session"
	"pawfinder/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[app] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	backend, err := storage.NewFileBackend(cfg.DataDir)
	if err != nil {
		logger.Fatalf("open data dir: %v", err)
	}
	store := storage.New(backend, logger)
	events := bus.New()

	var provider identity.Provider = identity.Disabled{}
	if cfg.IdentityURL != "" {
		provider = identity.NewHTTPProvider(cfg.IdentityURL, cfg.IdentityAnonKey, nil, logger)
	}

	sessions := session.New(provider)
	defer sessions.Close()
	sessions.Start(context.Background())

	catalogService := catalog.New(store, events)
	cartService := cart.New(store, events, logger)
	orderService := orders.New(store, events, reconcile.New(cfg.OrderAPIBase, nil, logger), logger)
	feedbackService := feedback.New(store, events, logger)
	feedbackService.SeedIfEmpty()
	historyService := history.New(store, events, logger)
	assistClient := assist.NewClient(cfg.AssistAPIBase, logger)
	views := router.New("/", sessions, nil)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:  catalogService,
		Cart:     cartService,
		Orders:   orderService,
		Feedback: feedbackService,
		History:  historyService,
		Assist:   assistClient,
		Sessions: sessions,
		Views:    views,
		Identity: provider,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
