package relational

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// Users

func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	const op = "relational.InsertUser"
	return errors.Annotate(insert(ctx, s.db, u), op)
}

func (s *Store) FindUser(ctx context.Context, id uint) (*models.User, error) {
	const op = "relational.FindUser"
	u, err := first[models.User](s.db.WithContext(ctx), id)
	return u, errors.Annotate(err, op)
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "relational.FindUserByUsername"
	u, err := first[models.User](s.db.WithContext(ctx).Where("username = ?", username))
	return u, errors.Annotate(err, op)
}

func (s *Store) FindUsers(ctx context.Context) ([]models.User, error) {
	const op = "relational.FindUsers"
	users, err := list[models.User](s.db.WithContext(ctx))
	return users, errors.Annotate(err, op)
}

func (s *Store) ModifyUser(ctx context.Context, id uint, fn func(*models.User) error) (*models.User, error) {
	const op = "relational.ModifyUser"
	u, err := modify(ctx, s, id, fn)
	return u, errors.Annotate(err, op)
}

func (s *Store) RemoveUser(ctx context.Context, id uint) (bool, error) {
	const op = "relational.RemoveUser"
	ok, err := remove[models.User](ctx, s.db, id)
	return ok, errors.Annotate(err, op)
}

// Batches

func (s *Store) InsertBatch(ctx context.Context, b *models.Batch) error {
	const op = "relational.InsertBatch"
	return errors.Annotate(insert(ctx, s.db, b), op)
}

func (s *Store) FindBatch(ctx context.Context, id uint) (*models.Batch, error) {
	const op = "relational.FindBatch"
	b, err := first[models.Batch](s.db.WithContext(ctx), id)
	return b, errors.Annotate(err, op)
}

func (s *Store) FindBatches(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error) {
	const op = "relational.FindBatches"
	q := s.db.WithContext(ctx)
	if filter.CoachID != nil {
		q = q.Where("coach_id = ?", *filter.CoachID)
	}
	batches, err := list[models.Batch](q)
	return batches, errors.Annotate(err, op)
}

func (s *Store) ModifyBatch(ctx context.Context, id uint, fn func(*models.Batch) error) (*models.Batch, error) {
	const op = "relational.ModifyBatch"
	b, err := modify(ctx, s, id, fn)
	return b, errors.Annotate(err, op)
}

func (s *Store) RemoveBatch(ctx context.Context, id uint) (bool, error) {
	const op = "relational.RemoveBatch"
	ok, err := remove[models.Batch](ctx, s.db, id)
	return ok, errors.Annotate(err, op)
}

// Students

func (s *Store) InsertStudent(ctx context.Context, st *models.Student) error {
	const op = "relational.InsertStudent"
	return errors.Annotate(insert(ctx, s.db, st), op)
}

func (s *Store) FindStudent(ctx context.Context, id uint) (*models.Student, error) {
	const op = "relational.FindStudent"
	st, err := first[models.Student](s.db.WithContext(ctx), id)
	return st, errors.Annotate(err, op)
}

func (s *Store) FindStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	const op = "relational.FindStudents"
	q := s.db.WithContext(ctx)
	if filter.BatchID != nil {
		q = q.Where("batch_id = ?", *filter.BatchID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	students, err := list[models.Student](q)
	return students, errors.Annotate(err, op)
}

func (s *Store) ModifyStudent(ctx context.Context, id uint, fn func(*models.Student) error) (*models.Student, error) {
	const op = "relational.ModifyStudent"
	st, err := modify(ctx, s, id, fn)
	return st, errors.Annotate(err, op)
}

func (s *Store) RemoveStudent(ctx context.Context, id uint) (bool, error) {
	const op = "relational.RemoveStudent"
	ok, err := remove[models.Student](ctx, s.db, id)
	return ok, errors.Annotate(err, op)
}

// Skill assessments

func (s *Store) InsertSkillAssessment(ctx context.Context, a *models.SkillAssessment) error {
	const op = "relational.InsertSkillAssessment"
	return errors.Annotate(insert(ctx, s.db, a), op)
}

func (s *Store) FindSkillAssessments(ctx context.Context, studentID uint, limit int) ([]models.SkillAssessment, error) {
	const op = "relational.FindSkillAssessments"
	out, err := newest[models.SkillAssessment](s.db.WithContext(ctx).Where("student_id = ?", studentID), limit)
	return out, errors.Annotate(err, op)
}

// Sessions

func (s *Store) InsertSession(ctx context.Context, se *models.Session) error {
	const op = "relational.InsertSession"
	return errors.Annotate(insert(ctx, s.db, se), op)
}

func (s *Store) FindSession(ctx context.Context, id uint) (*models.Session, error) {
	const op = "relational.FindSession"
	se, err := first[models.Session](s.db.WithContext(ctx), id)
	return se, errors.Annotate(err, op)
}

func (s *Store) FindSessions(ctx context.Context, q storage.SessionQuery) ([]models.Session, error) {
	const op = "relational.FindSessions"
	tx := s.db.WithContext(ctx)
	if q.BatchID != nil {
		tx = tx.Where("batch_id = ?", *q.BatchID)
	}
	if q.From != nil {
		tx = tx.Where(clause.Gte{Column: clause.Column{Name: "date"}, Value: *q.From})
	}
	if q.To != nil {
		tx = tx.Where(clause.Lt{Column: clause.Column{Name: "date"}, Value: *q.To})
	}
	sessions, err := list[models.Session](tx)
	return sessions, errors.Annotate(err, op)
}

func (s *Store) ModifySession(ctx context.Context, id uint, fn func(*models.Session) error) (*models.Session, error) {
	const op = "relational.ModifySession"
	se, err := modify(ctx, s, id, fn)
	return se, errors.Annotate(err, op)
}

func (s *Store) RemoveSession(ctx context.Context, id uint) (bool, error) {
	const op = "relational.RemoveSession"
	ok, err := remove[models.Session](ctx, s.db, id)
	return ok, errors.Annotate(err, op)
}

// Attendance

func (s *Store) FindAttendance(ctx context.Context, q storage.AttendanceQuery) ([]models.Attendance, error) {
	const op = "relational.FindAttendance"
	tx := s.db.WithContext(ctx)
	if q.SessionID != nil {
		tx = tx.Where("session_id = ?", *q.SessionID)
	}
	if q.StudentID != nil {
		tx = tx.Where("student_id = ?", *q.StudentID)
	}
	rows, err := list[models.Attendance](tx)
	return rows, errors.Annotate(err, op)
}

// SaveAttendance upserts inside a transaction. A concurrent insert of the same
// pair trips the unique index; the second attempt then updates that row.
func (s *Store) SaveAttendance(ctx context.Context, sessionID, studentID uint, fn storage.AttendanceApply) (*models.Attendance, error) {
	const op = "relational.SaveAttendance"
	var (
		out *models.Attendance
		err error
	)
	for attempt := 0; attempt < 2; attempt++ {
		out, err = s.saveAttendance(ctx, sessionID, studentID, fn)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	return out, errors.Annotate(err, op)
}

func (s *Store) saveAttendance(ctx context.Context, sessionID, studentID uint, fn storage.AttendanceApply) (*models.Attendance, error) {
	var out *models.Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := first[models.Attendance](s.locked(tx).Where("session_id = ? AND student_id = ?", sessionID, studentID))
		if err != nil {
			return err
		}
		exists := a != nil
		if !exists {
			a = &models.Attendance{}
		}
		if err := fn(a, exists); err != nil {
			return err
		}
		a.SessionID, a.StudentID = sessionID, studentID
		if exists {
			err = tx.Save(a).Error
		} else {
			err = tx.Create(a).Error
		}
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// Training plans

func (s *Store) InsertTrainingPlan(ctx context.Context, p *models.TrainingPlan) error {
	const op = "relational.InsertTrainingPlan"
	return errors.Annotate(insert(ctx, s.db, p), op)
}

func (s *Store) FindTrainingPlan(ctx context.Context, id uint) (*models.TrainingPlan, error) {
	const op = "relational.FindTrainingPlan"
	p, err := first[models.TrainingPlan](s.db.WithContext(ctx), id)
	return p, errors.Annotate(err, op)
}

func (s *Store) FindTrainingPlans(ctx context.Context, filter models.TrainingPlanFilter) ([]models.TrainingPlan, error) {
	const op = "relational.FindTrainingPlans"
	q := s.db.WithContext(ctx)
	if filter.StudentID != nil {
		q = q.Where("student_id = ?", *filter.StudentID)
	}
	if filter.BatchID != nil {
		q = q.Where("batch_id = ?", *filter.BatchID)
	}
	plans, err := list[models.TrainingPlan](q)
	return plans, errors.Annotate(err, op)
}

func (s *Store) ModifyTrainingPlan(ctx context.Context, id uint, fn func(*models.TrainingPlan) error) (*models.TrainingPlan, error) {
	const op = "relational.ModifyTrainingPlan"
	p, err := modify(ctx, s, id, fn)
	return p, errors.Annotate(err, op)
}

func (s *Store) RemoveTrainingPlan(ctx context.Context, id uint) (bool, error) {
	const op = "relational.RemoveTrainingPlan"
	ok, err := remove[models.TrainingPlan](ctx, s.db, id)
	return ok, errors.Annotate(err, op)
}

// Progress summaries

func (s *Store) InsertProgressSummary(ctx context.Context, p *models.ProgressSummary) error {
	const op = "relational.InsertProgressSummary"
	return errors.Annotate(insert(ctx, s.db, p), op)
}

func (s *Store) FindProgressSummaries(ctx context.Context, studentID uint) ([]models.ProgressSummary, error) {
	const op = "relational.FindProgressSummaries"
	out, err := newest[models.ProgressSummary](s.db.WithContext(ctx).Where("student_id = ?", studentID), 0)
	return out, errors.Annotate(err, op)
}

// Drill recommendations

func (s *Store) InsertDrillRecommendation(ctx context.Context, d *models.DrillRecommendation) error {
	const op = "relational.InsertDrillRecommendation"
	return errors.Annotate(insert(ctx, s.db, d), op)
}

func (s *Store) FindDrillRecommendations(ctx context.Context, limit int) ([]models.DrillRecommendation, error) {
	const op = "relational.FindDrillRecommendations"
	out, err := newest[models.DrillRecommendation](s.db.WithContext(ctx), limit)
	return out, errors.Annotate(err, op)
}
