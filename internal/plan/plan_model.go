package plan

import (
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// GeneratedByCoach tags plans written by hand instead of generated.
const GeneratedByCoach = "coach"

type CreatePlanRequest struct {
	StudentID  *uint                    `json:"studentId" binding:"omitempty,min=1" example:"1"`
	BatchID    *uint                    `json:"batchId" binding:"omitempty,min=1"`
	Week       int                      `json:"week" binding:"required,min=1" example:"1"`
	FocusAreas []string                 `json:"focusAreas" example:"Serve,Footwork"`
	Drills     *models.GeneratedContent `json:"drills"`
	Notes      *string                  `json:"notes"`
	Status     models.PlanStatus        `json:"status" binding:"omitempty,plan_status" example:"approved"`
}

func (r *CreatePlanRequest) toInput() models.NewTrainingPlan {
	return models.NewTrainingPlan{
		StudentID:   r.StudentID,
		BatchID:     r.BatchID,
		Week:        r.Week,
		FocusAreas:  r.FocusAreas,
		Drills:      r.Drills,
		Notes:       r.Notes,
		Status:      r.Status,
		GeneratedBy: GeneratedByCoach,
	}
}

type UpdatePlanRequest struct {
	StudentID  models.Nullable[uint]    `json:"studentId" swaggertype:"integer"`
	BatchID    models.Nullable[uint]    `json:"batchId" swaggertype:"integer"`
	Week       *int                     `json:"week" binding:"omitempty,min=1"`
	FocusAreas *[]string                `json:"focusAreas"`
	Drills     *models.GeneratedContent `json:"drills"`
	Notes      models.Nullable[string]  `json:"notes" swaggertype:"string"`
	Status     *models.PlanStatus       `json:"status" binding:"omitempty,plan_status"`
}

func (r *UpdatePlanRequest) toPatch() models.TrainingPlanPatch {
	return models.TrainingPlanPatch{
		StudentID:  r.StudentID,
		BatchID:    r.BatchID,
		Week:       r.Week,
		FocusAreas: r.FocusAreas,
		Drills:     r.Drills,
		Notes:      r.Notes,
		Status:     r.Status,
	}
}

// GeneratePlanRequest targets one student or every student of a batch.
// StudentID wins when both are set.
type GeneratePlanRequest struct {
	StudentID  *uint    `json:"studentId" binding:"omitempty,min=1" example:"1"`
	BatchID    *uint    `json:"batchId" binding:"omitempty,min=1"`
	FocusAreas []string `json:"focusAreas" example:"Serve"`
}
