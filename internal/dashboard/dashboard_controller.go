package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

type DashboardController struct {
	store storage.Storage
}

func NewDashboardController(store storage.Storage) *DashboardController {
	return &DashboardController{store: store}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Sessions today, student counts and the average change of the overall score between each student's two latest assessments.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /dashboard/stats [get]
// @Security BearerAuth
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.store.DashboardStats(c.Request.Context())
	if err != nil {
		responses.FromError(c, "Failed to fetch dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
