package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"pawfinder/internal/bus"
	"pawfinder/internal/catalog"
	"pawfinder/internal/config"
	"pawfinder/internal/feedback"
	"pawfinder/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	backend, err := storage.NewFileBackend(cfg.DataDir)
	if err != nil {
		logger.Fatalf("open data dir: %v", err)
	}
	store := storage.New(backend, logger)
	events := bus.New()

	listings := catalog.New(store, events).Reseed()
	feedback.New(store, events, logger).SeedIfEmpty()

	logger.Printf("seeded %d listings into %s", len(listings), cfg.DataDir)
}
