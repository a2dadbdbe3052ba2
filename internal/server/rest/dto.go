package rest

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
)

type createTodoRequest struct {
	Text string `json:"text"`
}

// updateTodoRequest keeps completed raw: only the literal true completes a
// todo, every other value (false, null, "true", 1) clears it.
type updateTodoRequest struct {
	Text      *string         `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

func (r updateTodoRequest) patch() services.TodoPatch {
	return services.TodoPatch{
		Text:      r.Text,
		Completed: string(bytes.TrimSpace(r.Completed)) == "true",
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type todoResponse struct {
	ID          string `json:"_id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
	CreatorID   string `json:"_creator"`
}

type todoEnvelope struct {
	Todo todoResponse `json:"todo"`
}

type listTodosResponse struct {
	Todos []todoResponse `json:"todos"`
}

type userResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

func todoToResponse(t *models.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatorID:   t.CreatorID,
	}
}

func todosToResponses(list []*models.Todo) []todoResponse {
	out := make([]todoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}

func userToResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}
