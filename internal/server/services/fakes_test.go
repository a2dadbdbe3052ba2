package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

var errDB = errors.New("db down")

// failingManager wraps a working manager and lets individual calls fail.
type failingManager struct {
	*repomanager.MemoryRepositoryManager

	failAtomic bool
	failLookup bool
	failTokens bool
	failTodos  bool
}

func newFailingManager() *failingManager {
	return &failingManager{MemoryRepositoryManager: repomanager.NewMemoryRepositoryManager()}
}

func (m *failingManager) Users() users.Repository {
	return &failingUsers{Repository: m.MemoryRepositoryManager.Users(), m: m}
}

func (m *failingManager) Tokens() tokens.Repository {
	return &failingTokens{Repository: m.MemoryRepositoryManager.Tokens(), m: m}
}

func (m *failingManager) Todos() todos.Repository {
	return &failingTodos{Repository: m.MemoryRepositoryManager.Todos(), m: m}
}

func (m *failingManager) Atomic(ctx context.Context, fn func(ctx context.Context, r repomanager.Repositories) error) error {
	if m.failAtomic {
		return errDB
	}
	return fn(ctx, m)
}

type failingUsers struct {
	users.Repository
	m *failingManager
}

func (f *failingUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.m.failLookup {
		return nil, errDB
	}
	return f.Repository.GetByEmail(ctx, email)
}

func (f *failingUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.m.failLookup {
		return nil, errDB
	}
	return f.Repository.GetByID(ctx, id)
}

type failingTokens struct {
	tokens.Repository
	m *failingManager
}

func (f *failingTokens) Add(ctx context.Context, userID string, t models.Token) error {
	if f.m.failTokens {
		return errDB
	}
	return f.Repository.Add(ctx, userID, t)
}

func (f *failingTokens) Exists(ctx context.Context, userID, value string) (bool, error) {
	if f.m.failTokens {
		return false, errDB
	}
	return f.Repository.Exists(ctx, userID, value)
}

func (f *failingTokens) Remove(ctx context.Context, userID, value string) error {
	if f.m.failTokens {
		return errDB
	}
	return f.Repository.Remove(ctx, userID, value)
}

type failingTodos struct {
	todos.Repository
	m *failingManager
}

func (f *failingTodos) Create(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	if f.m.failTodos {
		return nil, errDB
	}
	return f.Repository.Create(ctx, t)
}

func (f *failingTodos) ListByCreator(ctx context.Context, creatorID string) ([]*models.Todo, error) {
	if f.m.failTodos {
		return nil, errDB
	}
	return f.Repository.ListByCreator(ctx, creatorID)
}
