package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Data is lost
// on restart; meant for development and tests.
type MemoryRepositoryManager struct {
	mu     sync.Mutex
	users  *users.MemoryRepository
	tokens *tokens.MemoryRepository
	todos  *todos.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	u := users.NewMemoryRepository()
	return &MemoryRepositoryManager{
		users:  u,
		tokens: tokens.NewMemoryRepository(u),
		todos:  todos.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository   { return m.users }
func (m *MemoryRepositoryManager) Tokens() tokens.Repository { return m.tokens }
func (m *MemoryRepositoryManager) Todos() todos.Repository   { return m.todos }

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

// Atomic serializes units of work against each other; it does not roll
// back partial writes.
func (m *MemoryRepositoryManager) Atomic(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) Ping(context.Context) error  { return nil }
func (m *MemoryRepositoryManager) Close(context.Context) error { return nil }
