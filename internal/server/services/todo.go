package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TodoPatch is an update request after field filtering. Completed is true
// only when the client sent the JSON boolean true.
type TodoPatch struct {
	Text      *string
	Completed bool
}

type todoText struct {
	Text string `json:"text" validate:"required"`
}

type TodoService struct {
	repomanager repomanager.RepositoryManager
	validate    *validator.Validate
	now         func() time.Time
}

func NewTodoService(m repomanager.RepositoryManager) *TodoService {
	return &TodoService{repomanager: m, validate: newValidator(), now: time.Now}
}

// Create stores a new, not completed todo owned by creatorID.
func (s *TodoService) Create(ctx context.Context, creatorID, text string) (*models.Todo, error) {
	text, err := s.cleanText(text)
	if err != nil {
		return nil, err
	}

	todo := &models.Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		CreatorID: creatorID,
	}

	t, err := s.repomanager.Todos().Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context, creatorID string) ([]*models.Todo, error) {
	list, err := s.repomanager.Todos().ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return list, nil
}

// Get returns the caller's todo. Malformed ids are reported as
// common.ErrorNotFound, same as ids that match nothing.
func (s *TodoService) Get(ctx context.Context, creatorID, id string) (*models.Todo, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Todos().Get(ctx, id, creatorID)
}

// Update applies p. A completed todo gets the current time in epoch
// milliseconds as completedAt; anything else clears both fields.
func (s *TodoService) Update(ctx context.Context, creatorID, id string, p TodoPatch) (*models.Todo, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, common.ErrorNotFound
	}

	upd := models.TodoUpdate{Completed: p.Completed}
	if p.Text != nil {
		text, err := s.cleanText(*p.Text)
		if err != nil {
			return nil, err
		}
		upd.Text = &text
	}
	if p.Completed {
		at := s.now().UnixMilli()
		upd.CompletedAt = &at
	}

	return s.repomanager.Todos().Update(ctx, id, creatorID, upd)
}

// Delete removes and returns the caller's todo.
func (s *TodoService) Delete(ctx context.Context, creatorID, id string) (*models.Todo, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Todos().Delete(ctx, id, creatorID)
}

func (s *TodoService) cleanText(text string) (string, error) {
	in := todoText{Text: strings.TrimSpace(text)}
	if err := validateStruct(s.validate, in); err != nil {
		return "", err
	}
	return in.Text, nil
}

// canonicalID parses id as a UUID and returns its lowercase hyphenated form.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
