package student

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// RegisterStudentRoutes mounts student routes on an authenticated group.
func RegisterStudentRoutes(router *gin.RouterGroup, store storage.Storage) {
	sc := NewStudentController(store)

	students := router.Group("/students")
	{
		students.GET("", sc.ListStudents)
		students.POST("", sc.CreateStudent)
		students.GET("/at-risk", sc.ListAtRiskStudents)
		students.GET("/:id", sc.GetStudent)
		students.PATCH("/:id", sc.UpdateStudent)
		students.DELETE("/:id", sc.DeleteStudent)
		students.GET("/:id/attendance", sc.GetAttendanceSummary)
	}
}
