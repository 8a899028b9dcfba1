package storage

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// DashboardStats computes the headline numbers from the current records.
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	from, to := s.dayBounds(s.clock.Now())
	today, err := s.store.FindSessions(ctx, SessionQuery{From: &from, To: &to})
	if err != nil {
		return nil, errors.Annotate(err, "counting today's sessions")
	}
	students, err := s.store.FindStudents(ctx, models.StudentFilter{})
	if err != nil {
		return nil, errors.Annotate(err, "counting students")
	}

	stats := &models.DashboardStats{
		SessionsToday: len(today),
		TotalStudents: len(students),
	}
	var deltaSum float64
	var measured int
	for _, st := range students {
		switch st.Status {
		case models.StudentActive:
			stats.ActiveStudents++
		case models.StudentAtRisk:
			stats.AtRiskStudents++
		}
		recent, err := s.store.FindSkillAssessments(ctx, st.ID, 2)
		if err != nil {
			return nil, errors.Annotatef(err, "reading assessments of student %d", st.ID)
		}
		if len(recent) == 2 {
			deltaSum += float64(recent[0].Overall - recent[1].Overall)
			measured++
		}
	}
	stats.AverageImprovement = formatImprovement(deltaSum, measured)
	return stats, nil
}

func formatImprovement(sum float64, n int) string {
	if n == 0 {
		return "+0.0"
	}
	return fmt.Sprintf("%+.1f", sum/float64(n))
}

// StudentAttendance summarizes the attendance rows of a student, or returns
// nil when the student does not exist.
func (s *Service) StudentAttendance(ctx context.Context, studentID uint) (*models.AttendanceSummary, error) {
	st, err := s.store.FindStudent(ctx, studentID)
	if err != nil || st == nil {
		return nil, errors.Annotatef(err, "getting student %d", studentID)
	}
	rows, err := s.store.FindAttendance(ctx, AttendanceQuery{StudentID: &studentID})
	if err != nil {
		return nil, errors.Annotatef(err, "listing attendance of student %d", studentID)
	}

	sessions := newLookup(s.store.FindSession)
	type marked struct {
		at      time.Time
		id      uint
		present bool
	}
	history := make([]marked, 0, len(rows))
	for _, a := range rows {
		sessionID := a.SessionID
		se, err := sessions.get(ctx, &sessionID)
		if err != nil {
			return nil, errors.Annotatef(err, "resolving session %d", sessionID)
		}
		at := a.CreatedAt
		if se != nil {
			at = se.Date
		}
		history = append(history, marked{at: at, id: a.ID, present: a.Present})
	}
	// most recent session first
	sort.SliceStable(history, func(i, j int) bool {
		if !history[i].at.Equal(history[j].at) {
			return history[i].at.After(history[j].at)
		}
		return history[i].id > history[j].id
	})

	sum := &models.AttendanceSummary{StudentID: studentID, Total: len(history)}
	streak := true
	for _, m := range history {
		if m.present {
			sum.Present++
			streak = false
		} else if streak {
			sum.ConsecutiveMissed++
		}
	}
	if sum.Total > 0 {
		sum.Rate = math.Round(float64(sum.Present)*1000/float64(sum.Total)) / 10
	}
	return sum, nil
}
