// Package rest exposes the todo API over HTTP using gin.
package rest

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
)

// UserService is the account side of the API.
type UserService interface {
	Register(ctx context.Context, in services.Credentials) (*services.Session, error)
	Login(ctx context.Context, in services.Credentials) (*services.Session, error)
	Logout(ctx context.Context, userID, token string) error
	Authenticate(ctx context.Context, token string) (*services.Session, error)
}

// TodoService is the todo side of the API. All calls are scoped to creatorID.
type TodoService interface {
	Create(ctx context.Context, creatorID, text string) (*models.Todo, error)
	List(ctx context.Context, creatorID string) ([]*models.Todo, error)
	Get(ctx context.Context, creatorID, id string) (*models.Todo, error)
	Update(ctx context.Context, creatorID, id string, p services.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, creatorID, id string) (*models.Todo, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
