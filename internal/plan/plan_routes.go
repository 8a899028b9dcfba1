package plan

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// RegisterPlanRoutes mounts training plan routes on an authenticated group.
func RegisterPlanRoutes(router *gin.RouterGroup, store storage.Storage, adv advisor.Advisor, aiConfig config.AIConfig) {
	pc := NewPlanController(store, adv, aiConfig)

	plans := router.Group("/training-plans")
	{
		plans.GET("", pc.ListPlans)
		plans.POST("", pc.CreatePlan)
		plans.POST("/generate", pc.GeneratePlans)
		plans.GET("/:id", pc.GetPlan)
		plans.PATCH("/:id", pc.UpdatePlan)
		plans.DELETE("/:id", pc.DeletePlan)
	}
}
