package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"pawfinder/internal/bus"
	"pawfinder/internal/catalog"
	"pawfinder/internal/config"
	"pawfinder/internal/importer"
	"pawfinder/internal/storage"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to listings CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	backend, err := storage.NewFileBackend(cfg.DataDir)
	if err != nil {
		logger.Fatalf("open data dir: %v", err)
	}
	store := storage.New(backend, logger)

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, catalog.New(store, bus.New()))

	start := time.Now()
	count, err := imp.Run()
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d listings into %s in %s\n", count, cfg.DataDir, time.Since(start).Truncate(time.Millisecond))
}
