package session

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

func RegisterSessionRoutes(router *gin.RouterGroup, store storage.Storage, loc *time.Location) {
	sc := NewSessionController(store, loc)

	sessions := router.Group("/sessions")
	{
		sessions.GET("", sc.ListSessions)
		sessions.POST("", sc.CreateSession)
		sessions.GET("/:id", sc.GetSession)
		sessions.PATCH("/:id", sc.UpdateSession)
		sessions.DELETE("/:id", sc.DeleteSession)
		sessions.GET("/:id/attendance", sc.ListAttendance)
	}

	attendance := router.Group("/attendance")
	{
		attendance.POST("", sc.MarkAttendance)
		attendance.PATCH("/:sessionId/:studentId", sc.UpdateAttendance)
	}
}
