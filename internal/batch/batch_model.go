package batch

import "github.com/DhavalSuthar-24/acecourt/internal/models"

type CreateBatchRequest struct {
	Name     string       `json:"name" binding:"required" example:"Junior Beginners"`
	AgeGroup string       `json:"ageGroup" binding:"required" example:"8-12"`
	Level    models.Level `json:"level" binding:"required,batch_level" example:"beginner"`
	// CoachID defaults to the authenticated user.
	CoachID *uint `json:"coachId"`
}

type UpdateBatchRequest struct {
	Name     *string               `json:"name" binding:"omitempty,min=1"`
	AgeGroup *string               `json:"ageGroup" binding:"omitempty,min=1"`
	Level    *models.Level         `json:"level" binding:"omitempty,batch_level"`
	CoachID  models.Nullable[uint] `json:"coachId" swaggertype:"integer"`
}
