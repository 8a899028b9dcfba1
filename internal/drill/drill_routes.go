package drill

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// RegisterDrillRoutes mounts drill recommendation routes on an authenticated group.
func RegisterDrillRoutes(router *gin.RouterGroup, store storage.Storage, adv advisor.Advisor, aiConfig config.AIConfig) {
	dc := NewDrillController(store, adv, aiConfig)

	drills := router.Group("/drill-recommendations")
	{
		drills.GET("", dc.ListRecommendations)
		drills.POST("", dc.Recommend)
	}
}
