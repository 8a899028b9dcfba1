package assessment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

type AssessmentController struct {
	store storage.Storage
}

func NewAssessmentController(store storage.Storage) *AssessmentController {
	return &AssessmentController{store: store}
}

// ListAssessments godoc
// @Summary List a student's skill assessments
// @Description Newest first.
// @Tags assessments
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} models.SkillAssessment
// @Router /students/{id}/skill-assessments [get]
// @Security BearerAuth
func (ac *AssessmentController) ListAssessments(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	list, err := ac.store.ListSkillAssessments(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch skill assessments", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateAssessment godoc
// @Summary Record a skill assessment
// @Description The overall score is the rounded mean of the four sub-scores. The
// @Description assessor defaults to the authenticated user.
// @Tags assessments
// @Accept json
// @Produce json
// @Param assessment body CreateAssessmentRequest true "Scores"
// @Success 201 {object} models.SkillAssessment
// @Failure 400 {object} responses.ErrorResponse "Invalid scores"
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Router /skill-assessments [post]
// @Router /students/{id}/skill-assessments [post]
// @Security BearerAuth
func (ac *AssessmentController) CreateAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if !common.BindJSON(c, &req) {
		return
	}
	if c.Param("id") != "" {
		id, ok := common.PathID(c, "id")
		if !ok {
			return
		}
		req.StudentID = id
	}
	if req.StudentID == 0 {
		responses.BadRequest(c, "studentId is required")
		return
	}
	st, err := ac.store.GetStudent(c.Request.Context(), req.StudentID)
	if err != nil {
		responses.FromError(c, "Failed to create skill assessment", err)
		return
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return
	}
	a, err := ac.store.CreateSkillAssessment(c.Request.Context(), req.toInput())
	if err != nil {
		responses.FromError(c, "Failed to create skill assessment", err)
		return
	}
	c.JSON(http.StatusCreated, a)
}
