package plan

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

// defaultSkills stand in for a student who was never assessed.
var defaultSkills = models.SkillScores{Serve: 5, Footwork: 5, Stamina: 5, MentalFocus: 5}

// PlanController handles training plan HTTP requests
type PlanController struct {
	store       storage.Storage
	advisor     advisor.Advisor
	timeout     time.Duration
	concurrency int
}

func NewPlanController(store storage.Storage, adv advisor.Advisor, aiConfig config.AIConfig) *PlanController {
	concurrency := aiConfig.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &PlanController{store: store, advisor: adv, timeout: aiConfig.Timeout, concurrency: concurrency}
}

// ListPlans godoc
// @Summary List training plans
// @Tags training-plans
// @Produce json
// @Param studentId query int false "Filter by student"
// @Param batchId query int false "Filter by batch"
// @Success 200 {array} models.TrainingPlanWithDetails
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Router /training-plans [get]
// @Security BearerAuth
func (pc *PlanController) ListPlans(c *gin.Context) {
	studentID, err := common.OptionalUintQuery(c, "studentId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	batchID, err := common.OptionalUintQuery(c, "batchId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	plans, err := pc.store.ListTrainingPlans(c.Request.Context(), models.TrainingPlanFilter{StudentID: studentID, BatchID: batchID})
	if err != nil {
		responses.FromError(c, "Failed to fetch training plans", err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary Get a training plan
// @Tags training-plans
// @Produce json
// @Param id path int true "Training plan ID"
// @Success 200 {object} models.TrainingPlanWithDetails
// @Failure 404 {object} responses.ErrorResponse "Training plan not found"
// @Router /training-plans/{id} [get]
// @Security BearerAuth
func (pc *PlanController) GetPlan(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	p, err := pc.store.GetTrainingPlan(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch training plan", err)
		return
	}
	if p == nil {
		responses.NotFound(c, "Training plan")
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePlan godoc
// @Summary Create a training plan by hand
// @Tags training-plans
// @Accept json
// @Produce json
// @Param plan body CreatePlanRequest true "Training plan"
// @Success 201 {object} models.TrainingPlan
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Router /training-plans [post]
// @Security BearerAuth
func (pc *PlanController) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if !common.BindJSON(c, &req) {
		return
	}
	p, err := pc.store.CreateTrainingPlan(c.Request.Context(), req.toInput())
	if err != nil {
		responses.FromError(c, "Failed to create training plan", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdatePlan godoc
// @Summary Update a training plan
// @Description Partial update, typically to approve or modify a generated plan.
// @Tags training-plans
// @Accept json
// @Produce json
// @Param id path int true "Training plan ID"
// @Param plan body UpdatePlanRequest true "Fields to change"
// @Success 200 {object} models.TrainingPlan
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Training plan not found"
// @Router /training-plans/{id} [patch]
// @Security BearerAuth
func (pc *PlanController) UpdatePlan(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdatePlanRequest
	if !common.BindJSON(c, &req) {
		return
	}
	p, err := pc.store.UpdateTrainingPlan(c.Request.Context(), id, req.toPatch())
	if err != nil {
		responses.FromError(c, "Invalid training plan data", err)
		return
	}
	if p == nil {
		responses.NotFound(c, "Training plan")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePlan godoc
// @Summary Delete a training plan
// @Tags training-plans
// @Param id path int true "Training plan ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse "Training plan not found"
// @Router /training-plans/{id} [delete]
// @Security BearerAuth
func (pc *PlanController) DeletePlan(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	deleted, err := pc.store.DeleteTrainingPlan(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to delete training plan", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Training plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// GeneratePlans godoc
// @Summary Generate weekly training plans
// @Description Generates and stores one plan per student. For a batch, students whose plan fails are skipped.
// @Tags training-plans
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Student or batch"
// @Success 200 {array} models.TrainingPlan
// @Failure 400 {object} responses.ErrorResponse "Neither studentId nor batchId"
// @Failure 404 {object} responses.ErrorResponse "Student not found or empty batch"
// @Router /training-plans/generate [post]
// @Security BearerAuth
func (pc *PlanController) GeneratePlans(c *gin.Context) {
	var req GeneratePlanRequest
	if !common.BindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	var students []models.StudentWithBatch
	switch {
	case req.StudentID != nil:
		st, err := pc.store.GetStudent(ctx, *req.StudentID)
		if err != nil {
			responses.FromError(c, "Failed to fetch student", err)
			return
		}
		if st == nil {
			responses.NotFound(c, "Student")
			return
		}
		students = []models.StudentWithBatch{*st}
	case req.BatchID != nil:
		list, err := pc.store.ListStudents(ctx, models.StudentFilter{BatchID: req.BatchID})
		if err != nil {
			responses.FromError(c, "Failed to fetch students", err)
			return
		}
		if len(list) == 0 {
			responses.SendError(c, http.StatusNotFound, "No students found in batch", nil)
			return
		}
		students = list
	default:
		responses.BadRequest(c, "Either studentId or batchId is required")
		return
	}

	results := make([]*models.TrainingPlan, len(students))
	var g errgroup.Group
	g.SetLimit(pc.concurrency)
	for i := range students {
		st := &students[i]
		g.Go(func() error {
			p, err := pc.generate(ctx, st, req.FocusAreas)
			if err != nil {
				slog.WarnContext(ctx, "training plan generation failed", slog.Uint64("student_id", uint64(st.ID)), logger.Err(err))
				return nil
			}
			results[i] = p
			return nil
		})
	}
	_ = g.Wait()

	plans := make([]models.TrainingPlan, 0, len(results))
	for _, p := range results {
		if p != nil {
			plans = append(plans, *p)
		}
	}
	c.JSON(http.StatusOK, plans)
}

func (pc *PlanController) generate(ctx context.Context, st *models.StudentWithBatch, focusAreas []string) (*models.TrainingPlan, error) {
	skills := defaultSkills
	if st.LatestSkillAssessment != nil {
		skills = st.LatestSkillAssessment.Skills()
	}
	aiCtx, cancel := advisor.WithTimeout(ctx, pc.timeout)
	defer cancel()
	weekly, err := pc.advisor.GenerateTrainingPlan(aiCtx, advisor.PlanRequest{
		StudentName: st.Name,
		Age:         st.Age,
		SkillLevel:  skillLevel(st.LatestSkillAssessment),
		Skills:      skills,
		FocusAreas:  focusAreas,
	})
	if err != nil {
		return nil, err
	}
	return pc.store.CreateTrainingPlan(ctx, models.NewTrainingPlan{
		StudentID:  &st.ID,
		BatchID:    st.BatchID,
		Week:       weekly.Week,
		FocusAreas: weekly.FocusAreas,
		Drills:     models.NewPlanContent(*weekly),
	})
}

// skillLevel buckets the latest overall score. Unassessed students are
// beginners.
func skillLevel(a *models.SkillAssessment) string {
	switch {
	case a == nil:
		return string(models.LevelBeginner)
	case a.Overall >= 7:
		return string(models.LevelAdvanced)
	case a.Overall >= 5:
		return string(models.LevelIntermediate)
	}
	return string(models.LevelBeginner)
}
