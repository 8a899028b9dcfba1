package progress

import (
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// RegisterProgressRoutes mounts progress summary and dropout risk routes on
// an authenticated group.
func RegisterProgressRoutes(router *gin.RouterGroup, store storage.Storage, adv advisor.Advisor, aiConfig config.AIConfig, clk clock.Clock) {
	pc := NewProgressController(store, adv, aiConfig, clk)

	students := router.Group("/students")
	{
		students.GET("/:id/progress-summaries", pc.ListSummaries)
		students.POST("/:id/progress-summaries", pc.CreateSummary)
		students.POST("/:id/analyze-dropout-risk", pc.AnalyzeDropoutRisk)
	}
	router.POST("/progress-summaries/generate", pc.GenerateSummary)
}
