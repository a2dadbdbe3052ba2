package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

type todoHandler struct {
	svc    TodoService
	logger logging.Logger
}

func (h *todoHandler) create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: msgInvalidBody})
		return
	}

	sess := mustSession(c)
	t, err := h.svc.Create(c.Request.Context(), sess.User.ID, req.Text)
	if err != nil {
		if !isClientError(err) {
			h.logger.Error(c.Request.Context(), "create todo", "error", err)
		}
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, todoToResponse(t))
}

func (h *todoHandler) list(c *gin.Context) {
	sess := mustSession(c)
	list, err := h.svc.List(c.Request.Context(), sess.User.ID)
	if err != nil {
		h.logger.Error(c.Request.Context(), "list todos", "error", err)
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, listTodosResponse{Todos: todosToResponses(list)})
}

func (h *todoHandler) get(c *gin.Context) {
	sess := mustSession(c)
	t, err := h.svc.Get(c.Request.Context(), sess.User.ID, c.Param("id"))
	if err != nil {
		h.fail(c, "get todo", err)
		return
	}

	c.JSON(http.StatusOK, todoEnvelope{Todo: todoToResponse(t)})
}

func (h *todoHandler) update(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResponse{Message: msgInvalidBody})
		return
	}

	sess := mustSession(c)
	t, err := h.svc.Update(c.Request.Context(), sess.User.ID, c.Param("id"), req.patch())
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			badRequest(c, err)
			return
		}
		h.fail(c, "update todo", err)
		return
	}

	c.JSON(http.StatusOK, todoEnvelope{Todo: todoToResponse(t)})
}

func (h *todoHandler) delete(c *gin.Context) {
	sess := mustSession(c)
	t, err := h.svc.Delete(c.Request.Context(), sess.User.ID, c.Param("id"))
	if err != nil {
		h.fail(c, "delete todo", err)
		return
	}

	c.JSON(http.StatusOK, todoEnvelope{Todo: todoToResponse(t)})
}

// fail answers the by-id routes: 404 for missing, 400 for store errors,
// both with an empty body.
func (h *todoHandler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	h.logger.Error(c.Request.Context(), op, "error", err)
	c.Status(http.StatusBadRequest)
}
