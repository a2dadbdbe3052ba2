package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// PostgresRepository keeps tokens in the user_tokens table over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID string, token models.Token) error {
	query := `
		INSERT INTO user_tokens (user_id, access, token)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token.Access, token.Token); err != nil {
		var pge *pgconn.PgError
		if errors.As(err, &pge) && pge.Code == pgForeignKeyViolation {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID string, value string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM user_tokens WHERE user_id = $1 AND token = $2)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, userID, value).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID string, value string) error {
	query := `
		DELETE FROM user_tokens
		WHERE user_id = $1 AND token = $2
	`
	if _, err := r.db.ExecContext(ctx, query, userID, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
