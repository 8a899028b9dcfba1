package session

import (
	"time"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

type CreateSessionRequest struct {
	BatchID uint `json:"batchId" binding:"required" example:"1"`
	// CoachID defaults to the authenticated user.
	CoachID uint `json:"coachId"`
	// Date defaults to now.
	Date     time.Time `json:"date" example:"2025-03-10T16:00:00Z"`
	Duration *int      `json:"duration" binding:"omitempty,min=1" example:"90"`
	Court    *string   `json:"court" example:"Court 1"`
	Notes    *string   `json:"notes"`
}

type UpdateSessionRequest struct {
	BatchID  *uint                   `json:"batchId" binding:"omitempty,min=1"`
	CoachID  *uint                   `json:"coachId" binding:"omitempty,min=1"`
	Date     *time.Time              `json:"date"`
	Duration models.Nullable[int]    `json:"duration" swaggertype:"integer"`
	Court    models.Nullable[string] `json:"court" swaggertype:"string"`
	// Status moves forward only: scheduled, active, completed.
	Status *models.SessionStatus   `json:"status" binding:"omitempty,session_status"`
	Notes  models.Nullable[string] `json:"notes" swaggertype:"string"`
}

type MarkAttendanceRequest struct {
	SessionID uint    `json:"sessionId" binding:"required" example:"1"`
	StudentID uint    `json:"studentId" binding:"required" example:"1"`
	Present   *bool   `json:"present" example:"true"`
	Notes     *string `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Present *bool `json:"present" binding:"required" example:"false"`
}
