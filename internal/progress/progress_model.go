package progress

import "github.com/DhavalSuthar-24/acecourt/internal/models"

// GeneratedByCoach tags summaries written by hand.
const GeneratedByCoach = "coach"

type CreateSummaryRequest struct {
	Week            int      `json:"week" binding:"required,min=1" example:"12"`
	Summary         string   `json:"summary" binding:"required" example:"Steady week with a stronger first serve."`
	Improvements    []string `json:"improvements"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
}

func (r *CreateSummaryRequest) toInput(studentID uint) models.NewProgressSummary {
	return models.NewProgressSummary{
		StudentID:       studentID,
		Week:            r.Week,
		Summary:         r.Summary,
		Improvements:    r.Improvements,
		Concerns:        r.Concerns,
		Recommendations: r.Recommendations,
		GeneratedBy:     GeneratedByCoach,
	}
}

type GenerateSummaryRequest struct {
	StudentID uint `json:"studentId" binding:"required" example:"1"`
}
