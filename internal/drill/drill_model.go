package drill

import "github.com/DhavalSuthar-24/acecourt/internal/models"

type RecommendRequest struct {
	Query      string  `json:"query" binding:"required" example:"improve serve consistency"`
	AgeGroup   *string `json:"ageGroup" example:"10-12"`
	SkillLevel *string `json:"skillLevel" binding:"omitempty,batch_level" example:"intermediate"`
}

// RecommendResponse carries the drills and the record that logged the query.
type RecommendResponse struct {
	Drills         []models.Drill              `json:"drills"`
	Recommendation *models.DrillRecommendation `json:"recommendation"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
