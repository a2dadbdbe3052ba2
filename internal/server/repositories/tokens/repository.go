// Package tokens stores the auth tokens issued to each user. A token is
// valid only while it is present here, so removal is revocation.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository manages the per-user token set.
type Repository interface {
	// Add appends token to the user's set. Unknown users yield common.ErrorNotFound.
	Add(ctx context.Context, userID string, token models.Token) error

	// Exists reports whether value is currently in the user's set.
	Exists(ctx context.Context, userID string, value string) (bool, error)

	// Remove deletes value from the user's set. Removing an absent token is not an error.
	Remove(ctx context.Context, userID string, value string) error
}
