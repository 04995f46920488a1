package main

import (
	"context"
	"fmt"

	"github.com/monman-id/monman/internal/common"
	"github.com/monman-id/monman/internal/config"
	"github.com/monman-id/monman/internal/service"
	"github.com/monman-id/monman/internal/storage"
)

// initStorage opens the configured database and brings the schema up
// to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, common.NewUserError("could not open the budget database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
