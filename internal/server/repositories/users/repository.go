// Package users declares the credential store contract and its PostgreSQL,
// MongoDB and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository persists user accounts.
//
// Create fails with common.ErrorAlreadyExists when the email is taken;
// lookups return common.ErrorNotFound when nothing matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
