package todos

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// MemoryRepository keeps todos in process memory, in insertion order.
// Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]*models.Todo
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*models.Todo)}
}

func clone(t *models.Todo) *models.Todo {
	cp := *t
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		cp.CompletedAt = &v
	}
	return &cp
}

func (r *MemoryRepository) Create(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[todo.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.items[todo.ID] = clone(todo)
	r.order = append(r.order, todo.ID)
	return todo, nil
}

func (r *MemoryRepository) ListByCreator(_ context.Context, creatorID string) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Todo, 0)
	for _, id := range r.order {
		if t := r.items[id]; t.CreatorID == creatorID {
			result = append(result, clone(t))
		}
	}
	return result, nil
}

func (r *MemoryRepository) Get(_ context.Context, id, creatorID string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.find(id, creatorID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(t), nil
}

func (r *MemoryRepository) Update(_ context.Context, id, creatorID string, upd models.TodoUpdate) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.find(id, creatorID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Text != nil {
		t.Text = *upd.Text
	}
	t.Completed = upd.Completed
	t.CompletedAt = nil
	if upd.CompletedAt != nil {
		v := *upd.CompletedAt
		t.CompletedAt = &v
	}
	return clone(t), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id, creatorID string) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.find(id, creatorID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return t, nil
}

// find must be called with mu held.
func (r *MemoryRepository) find(id, creatorID string) (*models.Todo, bool) {
	t, ok := r.items[id]
	if !ok || t.CreatorID != creatorID {
		return nil, false
	}
	return t, true
}
