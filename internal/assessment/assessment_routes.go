package assessment

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

func RegisterAssessmentRoutes(router *gin.RouterGroup, store storage.Storage) {
	ac := NewAssessmentController(store)

	router.GET("/students/:id/skill-assessments", ac.ListAssessments)
	router.POST("/students/:id/skill-assessments", ac.CreateAssessment)
	router.POST("/skill-assessments", ac.CreateAssessment)
}
