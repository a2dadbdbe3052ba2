package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type userHandler struct {
	svc    UserService
	logger logging.Logger
}

func (h *userHandler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: msgInvalidBody})
		return
	}

	sess, err := h.svc.Register(c.Request.Context(), services.Credentials(req))
	if err != nil {
		if !isClientError(err) {
			h.logger.Error(c.Request.Context(), "register", "error", err)
		}
		badRequest(c, err)
		return
	}

	c.Header(common.AuthHeaderName, sess.Token)
	c.JSON(http.StatusOK, userToResponse(sess.User))
}

// login gives no hint about which credential was wrong.
func (h *userHandler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sess, err := h.svc.Login(c.Request.Context(), services.Credentials(req))
	if err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			h.logger.Error(c.Request.Context(), "login", "error", err)
		}
		c.Status(http.StatusBadRequest)
		return
	}

	c.Header(common.AuthHeaderName, sess.Token)
	c.JSON(http.StatusOK, userToResponse(sess.User))
}

func (h *userHandler) logout(c *gin.Context) {
	sess := mustSession(c)
	if err := h.svc.Logout(c.Request.Context(), sess.User.ID, sess.Token); err != nil {
		h.logger.Error(c.Request.Context(), "logout", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusOK)
}

func (h *userHandler) me(c *gin.Context) {
	c.JSON(http.StatusOK, userToResponse(mustSession(c).User))
}
