// Package repomanager builds the repositories for the configured storage
// backend and owns the backend's lifecycle.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// Repositories vends the three stores.
type Repositories interface {
	Users() users.Repository
	Tokens() tokens.Repository
	Todos() todos.Repository
}

// RepositoryManager is a backend: its repositories plus schema setup, a unit
// of work, health checking and shutdown.
type RepositoryManager interface {
	Repositories

	// RunMigrations creates the schema (tables or indexes) if missing.
	RunMigrations(ctx context.Context) error

	// Atomic runs fn with repositories bound to one unit of work. On
	// PostgreSQL this is a transaction; other backends run fn sequentially.
	Atomic(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New connects to the backend named by cfg.Storage.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return OpenPostgres(ctx, cfg.DatabaseDSN)
	case config.StorageMongo:
		return OpenMongo(ctx, cfg.DatabaseDSN, cfg.MongoDatabase)
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
