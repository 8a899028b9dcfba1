package storage

import (
	"context"
	"time"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func (s *Service) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.SessionWithDetails, error) {
	q := SessionQuery{BatchID: filter.BatchID}
	if filter.Date != nil {
		from, to := s.dayBounds(*filter.Date)
		q.From, q.To = &from, &to
	}
	sessions, err := s.store.FindSessions(ctx, q)
	if err != nil {
		return nil, errors.Annotate(err, "listing sessions")
	}
	return s.sessionViews(ctx, sessions)
}

func (s *Service) GetSession(ctx context.Context, id uint) (*models.SessionWithDetails, error) {
	se, err := s.store.FindSession(ctx, id)
	if err != nil || se == nil {
		return nil, errors.Annotatef(err, "getting session %d", id)
	}
	views, err := s.sessionViews(ctx, []models.Session{*se})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) CreateSession(ctx context.Context, in models.NewSession) (*models.Session, error) {
	now := s.now()
	se := &models.Session{
		BatchID:   in.BatchID,
		Date:      normalizeTime(in.Date),
		Duration:  in.Duration,
		Court:     in.Court,
		Status:    models.SessionScheduled,
		Notes:     in.Notes,
		CreatedAt: now,
	}
	if in.Date.IsZero() {
		se.Date = now
	}
	if in.CoachID != 0 {
		se.CoachID = in.CoachID
	} else if id := actor(ctx, nil); id != nil {
		se.CoachID = *id
	}
	if err := validateSession(se); err != nil {
		return nil, err
	}
	if err := s.requireBatch(ctx, &se.BatchID); err != nil {
		return nil, err
	}
	if se.CoachID != 0 {
		if err := s.requireCoach(ctx, &se.CoachID); err != nil {
			return nil, err
		}
	}
	if err := s.store.InsertSession(ctx, se); err != nil {
		return nil, errors.Annotate(err, "creating session")
	}
	return se, nil
}

func (s *Service) UpdateSession(ctx context.Context, id uint, patch models.SessionPatch) (*models.Session, error) {
	if err := s.requireBatch(ctx, patch.BatchID); err != nil {
		return nil, err
	}
	if err := s.requireCoach(ctx, patch.CoachID); err != nil {
		return nil, err
	}
	se, err := s.store.ModifySession(ctx, id, func(se *models.Session) error {
		if patch.Status != nil {
			if err := validateTransition(se.Status, *patch.Status); err != nil {
				return err
			}
			se.Status = *patch.Status
		}
		if patch.BatchID != nil {
			se.BatchID = *patch.BatchID
		}
		if patch.CoachID != nil {
			se.CoachID = *patch.CoachID
		}
		if patch.Date != nil {
			se.Date = normalizeTime(*patch.Date)
		}
		patch.Duration.ApplyTo(&se.Duration)
		patch.Court.ApplyTo(&se.Court)
		patch.Notes.ApplyTo(&se.Notes)
		return validateSession(se)
	})
	return se, errors.Annotatef(err, "updating session %d", id)
}

func (s *Service) DeleteSession(ctx context.Context, id uint) (bool, error) {
	ok, err := s.store.RemoveSession(ctx, id)
	return ok, errors.Annotatef(err, "deleting session %d", id)
}

// dayBounds returns the UTC instants that open and close the calendar day
// of t in the service location.
func (s *Service) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// Attendance

func (s *Service) ListAttendance(ctx context.Context, sessionID uint) ([]models.AttendanceWithStudent, error) {
	return s.attendanceViews(ctx, sessionID, newLookup(s.store.FindStudent))
}

// MarkAttendance records a student's attendance for a session. An existing
// row for the pair keeps its id and takes the new present flag and notes.
func (s *Service) MarkAttendance(ctx context.Context, in models.NewAttendance) (*models.Attendance, error) {
	if in.SessionID == 0 || in.StudentID == 0 {
		return nil, errors.NotValidf("attendance without session or student")
	}
	a, err := s.store.SaveAttendance(ctx, in.SessionID, in.StudentID, func(a *models.Attendance, exists bool) error {
		if !exists {
			a.CreatedAt = s.now()
			a.Present = false
		}
		if in.Present != nil {
			a.Present = *in.Present
		}
		if in.Notes != nil {
			a.Notes = in.Notes
		}
		return nil
	})
	return a, errors.Annotatef(err, "marking attendance of student %d in session %d", in.StudentID, in.SessionID)
}

// UpdateAttendance sets the present flag for the pair, creating the row when
// none exists.
func (s *Service) UpdateAttendance(ctx context.Context, sessionID, studentID uint, present bool) (*models.Attendance, error) {
	return s.MarkAttendance(ctx, models.NewAttendance{SessionID: sessionID, StudentID: studentID, Present: &present})
}
