package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/vesta-budget/vesta/internal/classify"
	"github.com/vesta-budget/vesta/internal/config"
	"github.com/vesta-budget/vesta/internal/parser"
	"github.com/vesta-budget/vesta/internal/storage"
)

// initStorage opens the database with proper path expansion and runs
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// buildRegistry wires the three bank parsers around a shared classifier.
func buildRegistry() *parser.Registry {
	classifier := classify.NewClassifier()

	registry := parser.NewRegistry()
	registry.Register(parser.NewAlphaBankParser(classifier))
	registry.Register(parser.NewRaiffeisenParser(classifier))
	registry.Register(parser.NewSberbankParser(classifier, parser.NewPDFToTextExtractor()))

	return registry
}
