package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/cache"
)

func RegisterAuthRoutes(router *gin.RouterGroup, repo AuthRepository, appConfig *config.Config, revoked cache.Cache, authMiddleware gin.HandlerFunc) {
	authController := NewAuthController(repo, appConfig, revoked)

	// Public routes
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/login", authController.Login)
	}

	// Authenticated routes
	authProtected := router.Group("/auth")
	authProtected.Use(authMiddleware)
	{
		authProtected.GET("/user", authController.GetCurrentUser)
		authProtected.POST("/logout", authController.Logout)
	}
}
