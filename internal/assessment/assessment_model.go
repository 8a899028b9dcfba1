package assessment

import "github.com/DhavalSuthar-24/acecourt/internal/models"

type CreateAssessmentRequest struct {
	StudentID   uint    `json:"studentId" example:"1"`
	SessionID   *uint   `json:"sessionId"`
	Serve       int     `json:"serve" binding:"required,min=1,max=10" example:"6"`
	Footwork    int     `json:"footwork" binding:"required,min=1,max=10" example:"7"`
	Stamina     int     `json:"stamina" binding:"required,min=1,max=10" example:"5"`
	MentalFocus int     `json:"mentalFocus" binding:"required,min=1,max=10" example:"6"`
	Notes       *string `json:"notes"`
}

func (r CreateAssessmentRequest) toInput() models.NewSkillAssessment {
	return models.NewSkillAssessment{
		StudentID:   r.StudentID,
		SessionID:   r.SessionID,
		Serve:       r.Serve,
		Footwork:    r.Footwork,
		Stamina:     r.Stamina,
		MentalFocus: r.MentalFocus,
		Notes:       r.Notes,
	}
}
