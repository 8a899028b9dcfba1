// Package memory is a process-local storage backend. Records live in maps
// guarded by a single mutex and never leave the package uncopied.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

type attendanceKey struct {
	sessionID uint
	studentID uint
}

// Store implements storage.EntityStore in memory.
type Store struct {
	mu sync.RWMutex

	users       *table[models.User]
	batches     *table[models.Batch]
	students    *table[models.Student]
	assessments *table[models.SkillAssessment]
	sessions    *table[models.Session]
	attendance  *table[models.Attendance]
	plans       *table[models.TrainingPlan]
	summaries   *table[models.ProgressSummary]
	drills      *table[models.DrillRecommendation]

	attendanceByKey map[attendanceKey]uint
}

var _ storage.EntityStore = (*Store)(nil)

func New() *Store {
	return &Store{
		users: newTable(func(u *models.User) *uint { return &u.ID }, func(u models.User) models.User { return u }),
		batches: newTable(func(b *models.Batch) *uint { return &b.ID }, func(b models.Batch) models.Batch {
			b.CoachID = clonePtr(b.CoachID)
			return b
		}),
		students:    newTable(func(s *models.Student) *uint { return &s.ID }, cloneStudent),
		assessments: newTable(func(a *models.SkillAssessment) *uint { return &a.ID }, cloneAssessment),
		sessions:    newTable(func(s *models.Session) *uint { return &s.ID }, cloneSession),
		attendance: newTable(func(a *models.Attendance) *uint { return &a.ID }, func(a models.Attendance) models.Attendance {
			a.Notes = clonePtr(a.Notes)
			return a
		}),
		plans:     newTable(func(p *models.TrainingPlan) *uint { return &p.ID }, clonePlan),
		summaries: newTable(func(p *models.ProgressSummary) *uint { return &p.ID }, cloneSummary),
		drills:    newTable(func(d *models.DrillRecommendation) *uint { return &d.ID }, cloneDrillRecommendation),

		attendanceByKey: make(map[attendanceKey]uint),
	}
}

func (s *Store) Close() error { return nil }

// Users

func (s *Store) InsertUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usernameTaken(u.Username, 0) {
		return errors.AlreadyExistsf("user %q", u.Username)
	}
	s.users.insert(u)
	return nil
}

func (s *Store) FindUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.find(id), nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := s.users.list(func(u *models.User) bool { return u.Username == username })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (s *Store) FindUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.list(nil), nil
}

func (s *Store) ModifyUser(_ context.Context, id uint, fn func(*models.User) error) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.modify(id, func(u *models.User) error {
		if err := fn(u); err != nil {
			return err
		}
		if s.usernameTaken(u.Username, id) {
			return errors.AlreadyExistsf("user %q", u.Username)
		}
		return nil
	})
}

func (s *Store) RemoveUser(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.remove(id), nil
}

func (s *Store) usernameTaken(username string, except uint) bool {
	for id, u := range s.users.rows {
		if u.Username == username && id != except {
			return true
		}
	}
	return false
}

// Batches

func (s *Store) InsertBatch(_ context.Context, b *models.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches.insert(b)
	return nil
}

func (s *Store) FindBatch(_ context.Context, id uint) (*models.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batches.find(id), nil
}

func (s *Store) FindBatches(_ context.Context, filter models.BatchFilter) ([]models.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batches.list(func(b *models.Batch) bool { return matchesPtr(filter.CoachID, b.CoachID) }), nil
}

func (s *Store) ModifyBatch(_ context.Context, id uint, fn func(*models.Batch) error) (*models.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches.modify(id, fn)
}

func (s *Store) RemoveBatch(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches.remove(id), nil
}

// Students

func (s *Store) InsertStudent(_ context.Context, st *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students.insert(st)
	return nil
}

func (s *Store) FindStudent(_ context.Context, id uint) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.find(id), nil
}

func (s *Store) FindStudents(_ context.Context, filter models.StudentFilter) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.list(func(st *models.Student) bool {
		if filter.Status != nil && st.Status != *filter.Status {
			return false
		}
		return matchesPtr(filter.BatchID, st.BatchID)
	}), nil
}

func (s *Store) ModifyStudent(_ context.Context, id uint, fn func(*models.Student) error) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students.modify(id, fn)
}

func (s *Store) RemoveStudent(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students.remove(id), nil
}

// Skill assessments

func (s *Store) InsertSkillAssessment(_ context.Context, a *models.SkillAssessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments.insert(a)
	return nil
}

func (s *Store) FindSkillAssessments(_ context.Context, studentID uint, limit int) ([]models.SkillAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.assessments.list(func(a *models.SkillAssessment) bool { return a.StudentID == studentID })
	sort.SliceStable(list, func(i, j int) bool {
		return newerFirst(list[i].CreatedAt, list[i].ID, list[j].CreatedAt, list[j].ID)
	})
	return capped(list, limit), nil
}

// Sessions

func (s *Store) InsertSession(_ context.Context, se *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.insert(se)
	return nil
}

func (s *Store) FindSession(_ context.Context, id uint) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions.find(id), nil
}

func (s *Store) FindSessions(_ context.Context, q storage.SessionQuery) ([]models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions.list(func(se *models.Session) bool {
		if !matches(q.BatchID, se.BatchID) {
			return false
		}
		if q.From != nil && se.Date.Before(*q.From) {
			return false
		}
		return q.To == nil || se.Date.Before(*q.To)
	}), nil
}

func (s *Store) ModifySession(_ context.Context, id uint, fn func(*models.Session) error) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.modify(id, fn)
}

func (s *Store) RemoveSession(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.remove(id), nil
}

// Attendance

func (s *Store) FindAttendance(_ context.Context, q storage.AttendanceQuery) ([]models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attendance.list(func(a *models.Attendance) bool {
		return matches(q.SessionID, a.SessionID) && matches(q.StudentID, a.StudentID)
	}), nil
}

func (s *Store) SaveAttendance(_ context.Context, sessionID, studentID uint, fn storage.AttendanceApply) (*models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := attendanceKey{sessionID: sessionID, studentID: studentID}
	if id, ok := s.attendanceByKey[key]; ok {
		return s.attendance.modify(id, func(a *models.Attendance) error {
			if err := fn(a, true); err != nil {
				return err
			}
			a.SessionID, a.StudentID = sessionID, studentID
			return nil
		})
	}
	a := &models.Attendance{SessionID: sessionID, StudentID: studentID}
	if err := fn(a, false); err != nil {
		return nil, err
	}
	a.SessionID, a.StudentID = sessionID, studentID
	s.attendance.insert(a)
	s.attendanceByKey[key] = a.ID
	return a, nil
}

// Training plans

func (s *Store) InsertTrainingPlan(_ context.Context, p *models.TrainingPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans.insert(p)
	return nil
}

func (s *Store) FindTrainingPlan(_ context.Context, id uint) (*models.TrainingPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plans.find(id), nil
}

func (s *Store) FindTrainingPlans(_ context.Context, filter models.TrainingPlanFilter) ([]models.TrainingPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plans.list(func(p *models.TrainingPlan) bool {
		return matchesPtr(filter.StudentID, p.StudentID) && matchesPtr(filter.BatchID, p.BatchID)
	}), nil
}

func (s *Store) ModifyTrainingPlan(_ context.Context, id uint, fn func(*models.TrainingPlan) error) (*models.TrainingPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plans.modify(id, fn)
}

func (s *Store) RemoveTrainingPlan(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plans.remove(id), nil
}

// Progress summaries

func (s *Store) InsertProgressSummary(_ context.Context, p *models.ProgressSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries.insert(p)
	return nil
}

func (s *Store) FindProgressSummaries(_ context.Context, studentID uint) ([]models.ProgressSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.summaries.list(func(p *models.ProgressSummary) bool { return p.StudentID == studentID })
	sort.SliceStable(list, func(i, j int) bool {
		return newerFirst(list[i].CreatedAt, list[i].ID, list[j].CreatedAt, list[j].ID)
	})
	return list, nil
}

// Drill recommendations

func (s *Store) InsertDrillRecommendation(_ context.Context, d *models.DrillRecommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drills.insert(d)
	return nil
}

func (s *Store) FindDrillRecommendations(_ context.Context, limit int) ([]models.DrillRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.drills.list(nil)
	sort.SliceStable(list, func(i, j int) bool {
		return newerFirst(list[i].CreatedAt, list[i].ID, list[j].CreatedAt, list[j].ID)
	})
	return capped(list, limit), nil
}

func capped[T any](list []T, limit int) []T {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
