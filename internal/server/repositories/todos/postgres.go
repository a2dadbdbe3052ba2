package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	t := &models.Todo{}
	var completedAt sql.NullInt64

	if err := row.Scan(&t.ID, &t.Text, &t.Completed, &completedAt, &t.CreatorID); err != nil {
		return nil, err
	}
	if completedAt.Valid {
		v := completedAt.Int64
		t.CompletedAt = &v
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (id, text, completed, completed_at, creator_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query, todo.ID, todo.Text, todo.Completed, todo.CompletedAt, todo.CreatorID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, creatorID string) ([]*models.Todo, error) {
	query := `
		SELECT id, text, completed, completed_at, creator_id
		FROM todos
		WHERE creator_id = $1
		ORDER BY seq
	`
	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	query := `
		SELECT id, text, completed, completed_at, creator_id
		FROM todos
		WHERE id = $1 AND creator_id = $2
	`
	return r.one(r.db.QueryRowContext(ctx, query, id, creatorID))
}

func (r *PostgresRepository) Update(ctx context.Context, id, creatorID string, upd models.TodoUpdate) (*models.Todo, error) {
	query := `
		UPDATE todos
		SET text = COALESCE($3, text), completed = $4, completed_at = $5
		WHERE id = $1 AND creator_id = $2
		RETURNING id, text, completed, completed_at, creator_id
	`
	return r.one(r.db.QueryRowContext(ctx, query, id, creatorID, upd.Text, upd.Completed, upd.CompletedAt))
}

func (r *PostgresRepository) Delete(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND creator_id = $2
		RETURNING id, text, completed, completed_at, creator_id
	`
	return r.one(r.db.QueryRowContext(ctx, query, id, creatorID))
}

func (r *PostgresRepository) one(row *sql.Row) (*models.Todo, error) {
	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
