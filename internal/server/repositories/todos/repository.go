// Package todos declares the task store contract. Every lookup and mutation
// is scoped by creator: a todo owned by someone else behaves as absent.
package todos

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository persists todos. Lookups, updates and deletes that match no
// record owned by creatorID return common.ErrorNotFound. Update and Delete
// are single atomic find-and-modify operations.
type Repository interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*models.Todo, error)
	Get(ctx context.Context, id, creatorID string) (*models.Todo, error)
	Update(ctx context.Context, id, creatorID string, upd models.TodoUpdate) (*models.Todo, error)
	Delete(ctx context.Context, id, creatorID string) (*models.Todo, error)
}
