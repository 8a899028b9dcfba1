package user

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/rmiddleware"
)

// RegisterUserRoutes mounts account management on an authenticated group.
func RegisterUserRoutes(router *gin.RouterGroup, store storage.Storage) {
	uc := NewUserController(store)

	users := router.Group("/users", rmiddleware.AdminMiddleware())
	{
		users.GET("", uc.ListUsers)
		users.POST("", uc.CreateUser)
		users.PATCH("/:id", uc.UpdateUser)
		users.DELETE("/:id", uc.DeleteUser)
	}
}
