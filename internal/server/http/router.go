// Package http assembles the gin router: middleware chain plus the
// authentication and user routes.
package http

import (
	"github.com/gin-gonic/gin"

	"userauth-server/internal/logging"
	"userauth-server/internal/server/auth"
	"userauth-server/internal/server/http/handlers"
	"userauth-server/internal/server/http/middleware"
)

type Dependencies struct {
	Logger logging.Logger
	Users  handlers.UserService
	Tokens *auth.TokenManager
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())

	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens, deps.Logger)
	userHandler := handlers.NewUserHandler(deps.Users, deps.Logger)

	router.GET("/healthz", handlers.Health)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/sign-up", authHandler.SignUp)
		authGroup.POST("/sign-in", authHandler.SignIn)
		authGroup.POST("/sign-out", authHandler.SignOut)

		protected := api.Group("/users")
		protected.Use(middleware.RequireAuth(deps.Tokens))
		protected.GET("/me", userHandler.Me)
	}

	return router
}
