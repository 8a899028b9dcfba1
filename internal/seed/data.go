package seed

import (
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func student(name string, age int, email, phone, parent, parentPhone string, batch *models.Batch, status models.StudentStatus, photo string) models.NewStudent {
	return models.NewStudent{
		Name:            name,
		Age:             age,
		Email:           optional(email),
		Phone:           optional(phone),
		ParentName:      optional(parent),
		ParentPhone:     optional(parentPhone),
		BatchID:         &batch.ID,
		ProfileImageURL: optional(fmt.Sprintf(profilePicture, photo)),
		Status:          status,
	}
}

func session(date time.Time, coach *models.User, batch *models.Batch, minutes int, court, notes string) models.NewSession {
	return models.NewSession{
		BatchID:  batch.ID,
		CoachID:  coach.ID,
		Date:     date,
		Duration: &minutes,
		Court:    optional(court),
		Notes:    optional(notes),
	}
}

func assessment(st *models.Student, se *models.Session, by *models.User, serve, footwork, stamina, focus int, notes string) models.NewSkillAssessment {
	return models.NewSkillAssessment{
		StudentID:   st.ID,
		SessionID:   &se.ID,
		Serve:       serve,
		Footwork:    footwork,
		Stamina:     stamina,
		MentalFocus: focus,
		Notes:       optional(notes),
		AssessedBy:  &by.ID,
	}
}

func attendance(se *models.Session, st *models.Student, present bool, notes string) models.NewAttendance {
	return models.NewAttendance{SessionID: se.ID, StudentID: st.ID, Present: &present, Notes: optional(notes)}
}

func plans(students []*models.Student, batches []*models.Batch, coach *models.User) []models.NewTrainingPlan {
	forehand := models.WeeklyPlan{
		Week:       1,
		FocusAreas: []string{"forehand", "footwork", "serve"},
		Days: []models.PlanDay{{
			Day: "Monday",
			Drills: []models.Drill{{
				Name:        "Forehand Rally",
				Description: "Practice consistent forehand shots from the baseline",
				Duration:    "20 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"racket", "balls"},
				Steps:       []string{"Warm up with gentle rallying", "Focus on form", "Increase pace gradually"},
			}},
		}},
	}
	serve := models.WeeklyPlan{
		Week:       2,
		FocusAreas: []string{"serve", "volley", "match_play"},
		Days: []models.PlanDay{{
			Day: "Tuesday",
			Drills: []models.Drill{{
				Name:        "Serve Practice",
				Description: "Work on first and second serve consistency",
				Duration:    "30 minutes",
				Difficulty:  "intermediate",
				Equipment:   []string{"racket", "balls", "targets"},
				Steps:       []string{"Practice service motion", "Hit to targets", "Work on spin variation"},
			}},
		}},
	}
	return []models.NewTrainingPlan{
		{
			StudentID:  &students[0].ID,
			BatchID:    &batches[0].ID,
			Week:       forehand.Week,
			FocusAreas: forehand.FocusAreas,
			Drills:     models.NewPlanContent(forehand),
			Notes:      optional("Focus on building consistency before power"),
			Status:     models.PlanApproved,
			CreatedBy:  &coach.ID,
		},
		{
			StudentID:  &students[1].ID,
			BatchID:    &batches[1].ID,
			Week:       serve.Week,
			FocusAreas: serve.FocusAreas,
			Drills:     models.NewPlanContent(serve),
			Notes:      optional("Preparing for upcoming junior tournament"),
			Status:     models.PlanApproved,
			CreatedBy:  &coach.ID,
		},
	}
}

func summaries(students []*models.Student) []models.NewProgressSummary {
	return []models.NewProgressSummary{
		{
			StudentID:       students[0].ID,
			Week:            1,
			Summary:         "Emma has shown excellent improvement in forehand consistency and court movement",
			Improvements:    []string{"forehand technique", "court positioning", "ball tracking"},
			Concerns:        []string{"serve power needs work"},
			Recommendations: []string{"focus on serve practice", "continue footwork drills"},
		},
		{
			StudentID:       students[1].ID,
			Week:            2,
			Summary:         "Lucas demonstrates strong competitive spirit and technical skills",
			Improvements:    []string{"serve accuracy", "net play", "tactical awareness"},
			Concerns:        []string{"mental pressure in matches"},
			Recommendations: []string{"practice pressure situations", "work on breathing techniques"},
		},
	}
}

func drillQueries(coach *models.User) []models.NewDrillRecommendation {
	return []models.NewDrillRecommendation{
		{
			Query:      "forehand practice",
			AgeGroup:   optional("8-12"),
			SkillLevel: optional("beginner"),
			CreatedBy:  &coach.ID,
			Recommendations: models.NewDrillContent([]models.Drill{{
				Name:        "Wall Rally",
				Description: "Hit forehand shots against a wall for consistency",
				Duration:    "15 minutes",
				Difficulty:  "beginner",
				Equipment:   []string{"racket", "tennis ball", "wall"},
				Steps:       []string{"Stand 6 feet from wall", "Hit gentle forehands", "Focus on form over power"},
			}}),
		},
		{
			Query:      "serve improvement",
			AgeGroup:   optional("13-17"),
			SkillLevel: optional("intermediate"),
			CreatedBy:  &coach.ID,
			Recommendations: models.NewDrillContent([]models.Drill{{
				Name:        "Target Serve",
				Description: "Practice serving to specific court areas",
				Duration:    "25 minutes",
				Difficulty:  "intermediate",
				Equipment:   []string{"racket", "tennis balls", "court targets"},
				Steps:       []string{"Set up targets in service boxes", "Practice hitting targets", "Track success rate"},
			}}),
		},
	}
}
