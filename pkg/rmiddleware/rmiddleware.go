package rmiddleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

// RoleMiddleware admits principals holding any of the allowed roles. It must
// run after the auth middleware.
func RoleMiddleware(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := common.GetPrincipal(c)
		if !ok {
			responses.Unauthorized(c, "")
			return
		}
		for _, role := range allowed {
			if p.Role == role {
				c.Next()
				return
			}
		}
		responses.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminMiddleware restricts a route group to academy administrators.
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.RoleAdmin)
}
