package rest

import (
	"slices"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Users   UserService
	Todos   TodoService
	Store   Pinger
	Logger  logging.Logger
	Origins []string
}

// NewRouter builds the gin engine with all routes. gin's mode must be set by
// the caller.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), cors.New(corsConfig(d.Origins)))

	router.GET("/health", handleHealth(d.Store, logger))

	uh := &userHandler{svc: d.Users, logger: logger.With("module", "users_handler")}
	th := &todoHandler{svc: d.Todos, logger: logger.With("module", "todos_handler")}
	auth := authenticate(d.Users, logger.With("module", "auth"))

	router.POST("/users", uh.register)
	router.POST("/users/login", uh.login)

	me := router.Group("/users/me", auth)
	me.GET("", uh.me)
	me.DELETE("/token", uh.logout)

	todos := router.Group("/todos", auth)
	todos.POST("", th.create)
	todos.GET("", th.list)
	todos.GET("/:id", th.get)
	todos.PATCH("/:id", th.update)
	todos.DELETE("/:id", th.delete)

	return router
}

// corsConfig allows and exposes the auth header. An empty list or "*"
// allows any origin.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", common.AuthHeaderName}
	cfg.ExposeHeaders = []string{common.AuthHeaderName}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
