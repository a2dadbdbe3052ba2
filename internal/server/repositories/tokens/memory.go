package tokens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// UserLookup tells the memory repository whether a user exists.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// MemoryRepository keeps token sets in process memory. Safe for concurrent use.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  UserLookup
	tokens map[string][]models.Token
}

func NewMemoryRepository(users UserLookup) *MemoryRepository {
	return &MemoryRepository{users: users, tokens: make(map[string][]models.Token)}
}

func (r *MemoryRepository) Add(ctx context.Context, userID string, token models.Token) error {
	if _, err := r.users.GetByID(ctx, userID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[userID] = append(r.tokens[userID], token)
	return nil
}

func (r *MemoryRepository) Exists(_ context.Context, userID string, value string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tokens[userID] {
		if t.Token == value {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Remove(_ context.Context, userID string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.tokens[userID]
	kept := list[:0]
	for _, t := range list {
		if t.Token != value {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(r.tokens, userID)
		return nil
	}
	r.tokens[userID] = kept
	return nil
}
