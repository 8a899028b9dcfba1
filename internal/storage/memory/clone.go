package memory

import (
	"time"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// newerFirst orders by createdAt descending, then id descending.
func newerFirst(at1 time.Time, id1 uint, at2 time.Time, id2 uint) bool {
	if !at1.Equal(at2) {
		return at1.After(at2)
	}
	return id1 > id2
}

func cloneStudent(s models.Student) models.Student {
	s.Email = clonePtr(s.Email)
	s.Phone = clonePtr(s.Phone)
	s.ParentName = clonePtr(s.ParentName)
	s.ParentPhone = clonePtr(s.ParentPhone)
	s.BatchID = clonePtr(s.BatchID)
	s.ProfileImageURL = clonePtr(s.ProfileImageURL)
	return s
}

func cloneAssessment(a models.SkillAssessment) models.SkillAssessment {
	a.SessionID = clonePtr(a.SessionID)
	a.Notes = clonePtr(a.Notes)
	a.AssessedBy = clonePtr(a.AssessedBy)
	return a
}

func cloneSession(s models.Session) models.Session {
	s.Duration = clonePtr(s.Duration)
	s.Court = clonePtr(s.Court)
	s.Notes = clonePtr(s.Notes)
	return s
}

func clonePlan(p models.TrainingPlan) models.TrainingPlan {
	p.StudentID = clonePtr(p.StudentID)
	p.BatchID = clonePtr(p.BatchID)
	p.FocusAreas = p.FocusAreas.Clone()
	p.Drills = p.Drills.Clone()
	p.Notes = clonePtr(p.Notes)
	p.CreatedBy = clonePtr(p.CreatedBy)
	return p
}

func cloneSummary(p models.ProgressSummary) models.ProgressSummary {
	p.Improvements = p.Improvements.Clone()
	p.Concerns = p.Concerns.Clone()
	p.Recommendations = p.Recommendations.Clone()
	return p
}

func cloneDrillRecommendation(d models.DrillRecommendation) models.DrillRecommendation {
	d.Recommendations = d.Recommendations.Clone()
	d.AgeGroup = clonePtr(d.AgeGroup)
	d.SkillLevel = clonePtr(d.SkillLevel)
	d.CreatedBy = clonePtr(d.CreatedBy)
	return d
}
