package storage

import (
	"context"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// lookup memoizes single-record reads for the span of one aggregation, so a
// batch shared by many students is read once. Unknown ids resolve to nil.
type lookup[T any] struct {
	find func(context.Context, uint) (*T, error)
	seen map[uint]*T
}

func newLookup[T any](find func(context.Context, uint) (*T, error)) *lookup[T] {
	return &lookup[T]{find: find, seen: make(map[uint]*T)}
}

func (l *lookup[T]) get(ctx context.Context, id *uint) (*T, error) {
	if id == nil {
		return nil, nil
	}
	if v, ok := l.seen[*id]; ok {
		return v, nil
	}
	v, err := l.find(ctx, *id)
	if err != nil {
		return nil, err
	}
	l.seen[*id] = v
	return v, nil
}

func (s *Service) studentViews(ctx context.Context, students []models.Student) ([]models.StudentWithBatch, error) {
	batches := newLookup(s.store.FindBatch)
	views := make([]models.StudentWithBatch, 0, len(students))
	for _, st := range students {
		b, err := batches.get(ctx, st.BatchID)
		if err != nil {
			return nil, errors.Annotatef(err, "resolving batch of student %d", st.ID)
		}
		latest, err := s.GetLatestSkillAssessment(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.StudentWithBatch{Student: st, Batch: b, LatestSkillAssessment: latest})
	}
	return views, nil
}

func (s *Service) sessionViews(ctx context.Context, sessions []models.Session) ([]models.SessionWithDetails, error) {
	batches := newLookup(s.store.FindBatch)
	users := newLookup(s.store.FindUser)
	students := newLookup(s.store.FindStudent)
	views := make([]models.SessionWithDetails, 0, len(sessions))
	for _, se := range sessions {
		batchID, coachID := se.BatchID, se.CoachID
		b, err := batches.get(ctx, &batchID)
		if err != nil {
			return nil, errors.Annotatef(err, "resolving batch of session %d", se.ID)
		}
		var coach *models.User
		if coachID != 0 {
			if coach, err = users.get(ctx, &coachID); err != nil {
				return nil, errors.Annotatef(err, "resolving coach of session %d", se.ID)
			}
		}
		rows, err := s.attendanceViews(ctx, se.ID, students)
		if err != nil {
			return nil, err
		}
		views = append(views, models.SessionWithDetails{Session: se, Batch: b, Coach: coach, Attendance: rows})
	}
	return views, nil
}

func (s *Service) attendanceViews(ctx context.Context, sessionID uint, students *lookup[models.Student]) ([]models.AttendanceWithStudent, error) {
	rows, err := s.store.FindAttendance(ctx, AttendanceQuery{SessionID: &sessionID})
	if err != nil {
		return nil, errors.Annotatef(err, "listing attendance of session %d", sessionID)
	}
	out := make([]models.AttendanceWithStudent, 0, len(rows))
	for _, a := range rows {
		studentID := a.StudentID
		st, err := students.get(ctx, &studentID)
		if err != nil {
			return nil, errors.Annotatef(err, "resolving student %d", studentID)
		}
		out = append(out, models.AttendanceWithStudent{Attendance: a, Student: st})
	}
	return out, nil
}

func (s *Service) planViews(ctx context.Context, plans []models.TrainingPlan) ([]models.TrainingPlanWithDetails, error) {
	students := newLookup(s.store.FindStudent)
	batches := newLookup(s.store.FindBatch)
	users := newLookup(s.store.FindUser)
	views := make([]models.TrainingPlanWithDetails, 0, len(plans))
	for _, p := range plans {
		v := models.TrainingPlanWithDetails{TrainingPlan: p}
		var err error
		if v.Student, err = students.get(ctx, p.StudentID); err != nil {
			return nil, errors.Annotatef(err, "resolving student of plan %d", p.ID)
		}
		if v.Batch, err = batches.get(ctx, p.BatchID); err != nil {
			return nil, errors.Annotatef(err, "resolving batch of plan %d", p.ID)
		}
		if v.Creator, err = users.get(ctx, p.CreatedBy); err != nil {
			return nil, errors.Annotatef(err, "resolving creator of plan %d", p.ID)
		}
		views = append(views, v)
	}
	return views, nil
}
