package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"qa-platform/internal/config"
	"qa-platform/internal/dataset"
	"qa-platform/internal/platform/logger"
	"qa-platform/internal/question/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: config:", err)
		os.Exit(1)
	}

	dataPath := flag.String("data", cfg.Dataset.Path, "path to the question source document (.json or .yaml)")
	dbPath := flag.String("db", "questions.db", "sqlite database to write the snapshot into")
	flag.Parse()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	records, err := dataset.LoadFile(*dataPath, dataset.WithWarnFunc(log.Warn))
	if err != nil {
		log.Fatal("failed to load questions", "path", *dataPath, "error", err)
	}

	store, err := sqlite.NewSQLiteStore(*dbPath)
	if err != nil {
		log.Fatal("failed to open snapshot database", "db", *dbPath, "error", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := store.WriteSnapshot(ctx, *dataPath, records, time.Now().UTC()); err != nil {
		log.Fatal("failed to write snapshot", "db", *dbPath, "error", err)
	}

	counts, err := store.CountByCategory(ctx)
	if err != nil {
		log.Fatal("failed to summarize snapshot", "db", *dbPath, "error", err)
	}
	for _, count := range counts {
		log.Info("category exported", "category", count.Category, "questions", count.Count)
	}
	log.Info("snapshot written", "db", *dbPath, "source", *dataPath, "questions", len(records), "categories", len(counts))
}
