package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

func RegisterDashboardRoutes(router *gin.RouterGroup, store storage.Storage) {
	dc := NewDashboardController(store)
	router.GET("/dashboard/stats", dc.GetStats)
}
