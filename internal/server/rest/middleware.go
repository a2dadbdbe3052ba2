package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

type sessionCtxKey struct{}

// authenticate admits requests carrying a live x-auth token and records the
// session in both the gin and the request context.
func authenticate(users UserService, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AuthHeaderName)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		sess, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, common.ErrorUnauthorized) {
				logger.Error(c.Request.Context(), "authentication failed", "error", err)
			}
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), sessionCtxKey{}, sess))
		c.Next()
	}
}

// SessionFromContext returns the session stored by the auth middleware.
func SessionFromContext(ctx context.Context) (*services.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*services.Session)
	return sess, ok
}

// mustSession is only valid behind authenticate.
func mustSession(c *gin.Context) *services.Session {
	return c.MustGet(sessionKey).(*services.Session)
}

func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
