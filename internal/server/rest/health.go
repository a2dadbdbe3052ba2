package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

func handleHealth(store Pinger, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Warn(ctx, "store ping failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		c.JSON(http.StatusOK, healthResponse{Status: "ok", Service: "todokeeper"})
	}
}
