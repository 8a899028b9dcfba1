package progress

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

const (
	// MinAssessments is the history needed to compare two weeks.
	MinAssessments = 2
	summaryNotes   = 5
	riskHistory    = 5
	riskNotes      = 3
)

// ProgressController handles progress summaries and dropout risk analysis.
type ProgressController struct {
	store   storage.Storage
	advisor advisor.Advisor
	timeout time.Duration
	clock   clock.Clock
}

func NewProgressController(store storage.Storage, adv advisor.Advisor, aiConfig config.AIConfig, clk clock.Clock) *ProgressController {
	return &ProgressController{store: store, advisor: adv, timeout: aiConfig.Timeout, clock: clk}
}

// ListSummaries godoc
// @Summary List progress summaries of a student
// @Description Newest first.
// @Tags progress
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} models.ProgressSummary
// @Router /students/{id}/progress-summaries [get]
// @Security BearerAuth
func (pc *ProgressController) ListSummaries(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	summaries, err := pc.store.ListProgressSummaries(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch progress summaries", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// CreateSummary godoc
// @Summary Record a progress summary by hand
// @Tags progress
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param summary body CreateSummaryRequest true "Summary"
// @Success 201 {object} models.ProgressSummary
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Router /students/{id}/progress-summaries [post]
// @Security BearerAuth
func (pc *ProgressController) CreateSummary(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	var req CreateSummaryRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	st, err := pc.store.GetStudent(ctx, id)
	if err != nil {
		responses.FromError(c, "Failed to fetch student", err)
		return
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return
	}
	summary, err := pc.store.CreateProgressSummary(ctx, req.toInput(id))
	if err != nil {
		responses.FromError(c, "Failed to create progress summary", err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// GenerateSummary godoc
// @Summary Generate a progress summary
// @Description Compares the two latest skill assessments of the student and stores the analysis.
// @Tags progress
// @Accept json
// @Produce json
// @Param request body GenerateSummaryRequest true "Student"
// @Success 200 {object} models.ProgressSummary
// @Failure 400 {object} responses.ErrorResponse "Fewer than two assessments"
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Failure 502 {object} responses.ErrorResponse "Advisor failure"
// @Router /progress-summaries/generate [post]
// @Security BearerAuth
func (pc *ProgressController) GenerateSummary(c *gin.Context) {
	var req GenerateSummaryRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	st, err := pc.store.GetStudent(ctx, req.StudentID)
	if err != nil {
		responses.FromError(c, "Failed to fetch student", err)
		return
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return
	}
	assessments, err := pc.store.ListSkillAssessments(ctx, st.ID)
	if err != nil {
		responses.FromError(c, "Failed to fetch skill assessments", err)
		return
	}
	if len(assessments) < MinAssessments {
		responses.BadRequest(c, "Need at least 2 skill assessments to generate progress summary")
		return
	}
	rate, _, err := pc.attendance(ctx, st.ID)
	if err != nil {
		responses.FromError(c, "Failed to fetch attendance", err)
		return
	}

	aiCtx, cancel := advisor.WithTimeout(ctx, pc.timeout)
	defer cancel()
	insight, err := pc.advisor.GenerateProgressSummary(aiCtx, advisor.ProgressRequest{
		StudentName:    st.Name,
		Previous:       assessments[1].Skills(),
		Current:        assessments[0].Skills(),
		SessionNotes:   notes(assessments, summaryNotes),
		AttendanceRate: rate,
	})
	if err != nil {
		responses.BadGateway(c, "Failed to generate progress summary", err)
		return
	}

	_, week := pc.clock.Now().UTC().ISOWeek()
	summary, err := pc.store.CreateProgressSummary(ctx, models.NewProgressSummary{
		StudentID:       st.ID,
		Week:            week,
		Summary:         insight.Summary,
		Improvements:    insight.Improvements,
		Concerns:        insight.Concerns,
		Recommendations: insight.Recommendations,
	})
	if err != nil {
		responses.FromError(c, "Failed to save progress summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AnalyzeDropoutRisk godoc
// @Summary Analyze the dropout risk of a student
// @Description Builds a retention plan from attendance and the recent assessment history. Nothing is stored.
// @Tags progress
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} advisor.RetentionPlan
// @Failure 404 {object} responses.ErrorResponse "Student not found"
// @Failure 502 {object} responses.ErrorResponse "Advisor failure"
// @Router /students/{id}/analyze-dropout-risk [post]
// @Security BearerAuth
func (pc *ProgressController) AnalyzeDropoutRisk(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	st, err := pc.store.GetStudent(ctx, id)
	if err != nil {
		responses.FromError(c, "Failed to fetch student", err)
		return
	}
	if st == nil {
		responses.NotFound(c, "Student")
		return
	}
	assessments, err := pc.store.ListSkillAssessments(ctx, st.ID)
	if err != nil {
		responses.FromError(c, "Failed to fetch skill assessments", err)
		return
	}
	rate, missed, err := pc.attendance(ctx, st.ID)
	if err != nil {
		responses.FromError(c, "Failed to fetch attendance", err)
		return
	}

	aiCtx, cancel := advisor.WithTimeout(ctx, pc.timeout)
	defer cancel()
	plan, err := pc.advisor.AnalyzeDropoutRisk(aiCtx, advisor.RiskRequest{
		StudentName:      st.Name,
		AttendanceRate:   rate,
		SkillProgression: progression(assessments, riskHistory),
		MissedSessions:   missed,
		SessionNotes:     notes(assessments, riskNotes),
	})
	if err != nil {
		responses.BadGateway(c, "Failed to analyze dropout risk", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// attendance returns the present percentage and the current run of missed
// sessions. A student with no marked sessions counts as fully present.
func (pc *ProgressController) attendance(ctx context.Context, studentID uint) (float64, int, error) {
	summary, err := pc.store.StudentAttendance(ctx, studentID)
	if err != nil {
		return 0, 0, err
	}
	if summary == nil || summary.Total == 0 {
		return 100, 0, nil
	}
	return summary.Rate, summary.ConsecutiveMissed, nil
}

// notes collects the non-empty notes of the newest n assessments.
func notes(assessments []models.SkillAssessment, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < len(assessments) && i < n; i++ {
		if a := assessments[i]; a.Notes != nil && *a.Notes != "" {
			out = append(out, *a.Notes)
		}
	}
	return out
}

// progression lists the overall scores of the newest n assessments, oldest
// first.
func progression(assessments []models.SkillAssessment, n int) []int {
	if len(assessments) < n {
		n = len(assessments)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = assessments[i].Overall
	}
	return out
}
