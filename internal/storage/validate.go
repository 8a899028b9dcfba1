package storage

import (
	"math"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

const (
	minScore = 1
	maxScore = 10
)

func validateUser(username, password string, role models.Role) error {
	if username == "" {
		return errors.NotValidf("empty username")
	}
	if password == "" {
		return errors.NotValidf("empty password")
	}
	if !role.Valid() {
		return errors.NotValidf("role %q", role)
	}
	return nil
}

func validateBatch(b *models.Batch) error {
	if b.Name == "" {
		return errors.NotValidf("empty batch name")
	}
	if b.AgeGroup == "" {
		return errors.NotValidf("empty age group")
	}
	if !b.Level.Valid() {
		return errors.NotValidf("level %q", b.Level)
	}
	return nil
}

func validateStudent(s *models.Student) error {
	if s.Name == "" {
		return errors.NotValidf("empty student name")
	}
	if s.Age < 0 {
		return errors.NotValidf("age %d", s.Age)
	}
	if !s.Status.Valid() {
		return errors.NotValidf("student status %q", s.Status)
	}
	return nil
}

func validateScores(sc models.SkillScores) error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"serve", sc.Serve},
		{"footwork", sc.Footwork},
		{"stamina", sc.Stamina},
		{"mentalFocus", sc.MentalFocus},
	} {
		if f.value < minScore || f.value > maxScore {
			return errors.NotValidf("%s score %d outside [%d,%d]", f.name, f.value, minScore, maxScore)
		}
	}
	return nil
}

// overallScore is the rounded mean of the four sub-scores.
func overallScore(sc models.SkillScores) int {
	sum := sc.Serve + sc.Footwork + sc.Stamina + sc.MentalFocus
	return int(math.Round(float64(sum) / 4))
}

func validateSession(s *models.Session) error {
	if s.BatchID == 0 {
		return errors.NotValidf("missing batch")
	}
	if s.Duration != nil && *s.Duration < 0 {
		return errors.NotValidf("duration %d", *s.Duration)
	}
	if !s.Status.Valid() {
		return errors.NotValidf("session status %q", s.Status)
	}
	return nil
}

// validateTransition allows staying put or moving forward along
// scheduled, active, completed.
func validateTransition(from, to models.SessionStatus) error {
	if !to.Valid() {
		return errors.NotValidf("session status %q", to)
	}
	if to.Rank() < from.Rank() {
		return errors.NotValidf("session status change %s -> %s", from, to)
	}
	return nil
}

func validatePlan(p *models.TrainingPlan) error {
	if p.StudentID == nil && p.BatchID == nil {
		return errors.NotValidf("training plan without student or batch")
	}
	if p.Week < 1 {
		return errors.NotValidf("week %d", p.Week)
	}
	if !p.Status.Valid() {
		return errors.NotValidf("plan status %q", p.Status)
	}
	if p.Drills != nil {
		if err := p.Drills.Validate(); err != nil {
			return errors.NewNotValid(err, "plan drills")
		}
	}
	return nil
}
