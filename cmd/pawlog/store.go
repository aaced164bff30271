package main

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/pawlog/backend/internal/config"
	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/memory"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/seed"
	"github.com/JonnyWalker81/pawlog/backend/internal/repository/sqlite"
	"github.com/JonnyWalker81/pawlog/backend/pkg/supabase"
)

// store bundles the repositories of one storage driver
type store struct {
	events  repository.EventRepository
	catalog repository.CatalogRepository
	close   func() error
}

// openStore builds the repositories selected by storage.driver
func openStore(ctx context.Context, sc config.StorageConfig, log logger.Logger) (*store, error) {
	noop := func() error { return nil }

	switch sc.Driver {
	case config.DriverSupabase:
		client := supabase.NewClient(sc.SupabaseURL, sc.SupabaseServiceKey)
		log.Info("using supabase store", logger.String("url", sc.SupabaseURL))
		return &store{
			events:  repository.NewEventRepository(client),
			catalog: repository.NewCatalogRepository(client),
			close:   noop,
		}, nil

	case config.DriverSQLite:
		catalogs, err := seed.Load(sc.SeedFile)
		if err != nil {
			return nil, err
		}
		db, err := sqlite.Open(ctx, sc.SQLitePath, catalogs)
		if err != nil {
			return nil, err
		}
		log.Info("using sqlite store", logger.String("path", sc.SQLitePath))
		return &store{events: db, catalog: db, close: db.Close}, nil

	case config.DriverMemory:
		catalogs, err := seed.Load(sc.SeedFile)
		if err != nil {
			return nil, err
		}
		log.Warn("using in-memory store; events are lost on restart")
		return &store{
			events:  memory.NewEventRepository(),
			catalog: memory.NewCatalogRepository(catalogs),
			close:   noop,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", sc.Driver)
	}
}
