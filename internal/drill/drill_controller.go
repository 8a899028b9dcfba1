package drill

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

// DrillController handles drill recommendation HTTP requests
type DrillController struct {
	store   storage.Storage
	advisor advisor.Advisor
	timeout time.Duration
}

func NewDrillController(store storage.Storage, adv advisor.Advisor, aiConfig config.AIConfig) *DrillController {
	return &DrillController{store: store, advisor: adv, timeout: aiConfig.Timeout}
}

// ListRecommendations godoc
// @Summary Recent drill recommendations
// @Description Newest first.
// @Tags drills
// @Produce json
// @Param limit query int false "Maximum records" default(10)
// @Success 200 {array} models.DrillRecommendation
// @Failure 400 {object} responses.ErrorResponse "Invalid limit"
// @Router /drill-recommendations [get]
// @Security BearerAuth
func (dc *DrillController) ListRecommendations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			responses.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}
	list, err := dc.store.ListDrillRecommendations(c.Request.Context(), limit)
	if err != nil {
		responses.FromError(c, "Failed to fetch drill recommendations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Recommend godoc
// @Summary Recommend drills
// @Description Answers a free-text coaching question with drills and records the query.
// @Tags drills
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Query"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} responses.ErrorResponse "Query is required"
// @Failure 502 {object} responses.ErrorResponse "Advisor failure"
// @Router /drill-recommendations [post]
// @Security BearerAuth
func (dc *DrillController) Recommend(c *gin.Context) {
	var req RecommendRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	aiCtx, cancel := advisor.WithTimeout(ctx, dc.timeout)
	drills, err := dc.advisor.RecommendDrills(aiCtx, advisor.DrillRequest{
		Query:      req.Query,
		AgeGroup:   deref(req.AgeGroup),
		SkillLevel: deref(req.SkillLevel),
	})
	cancel()
	if err != nil {
		responses.BadGateway(c, "Failed to generate drill recommendations", err)
		return
	}

	rec, err := dc.store.CreateDrillRecommendation(ctx, models.NewDrillRecommendation{
		Query:           req.Query,
		Recommendations: models.NewDrillContent(drills),
		AgeGroup:        req.AgeGroup,
		SkillLevel:      req.SkillLevel,
	})
	if err != nil {
		responses.FromError(c, "Failed to save drill recommendation", err)
		return
	}
	c.JSON(http.StatusOK, RecommendResponse{Drills: rec.Recommendations.Drills, Recommendation: rec})
}
