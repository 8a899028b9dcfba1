// Package storage is the access layer between the HTTP handlers and the
// persisted academy records.
//
// Storage is the contract handlers depend on. Service implements it over any
// EntityStore backend, so every backend shares one set of validation, default
// and aggregation rules. Lookups of unknown ids return (nil, nil); errors are
// reserved for invalid input and backend failures.
package storage

import (
	"context"
	"time"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// Storage is the full set of CRUD and aggregation operations.
type Storage interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in models.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) (bool, error)

	ListBatches(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error)
	GetBatch(ctx context.Context, id uint) (*models.Batch, error)
	CreateBatch(ctx context.Context, in models.NewBatch) (*models.Batch, error)
	UpdateBatch(ctx context.Context, id uint, patch models.BatchPatch) (*models.Batch, error)
	DeleteBatch(ctx context.Context, id uint) (bool, error)

	ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.StudentWithBatch, error)
	GetStudent(ctx context.Context, id uint) (*models.StudentWithBatch, error)
	CreateStudent(ctx context.Context, in models.NewStudent) (*models.Student, error)
	UpdateStudent(ctx context.Context, id uint, patch models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id uint) (bool, error)
	ListAtRiskStudents(ctx context.Context) ([]models.StudentWithBatch, error)
	StudentAttendance(ctx context.Context, studentID uint) (*models.AttendanceSummary, error)

	ListSkillAssessments(ctx context.Context, studentID uint) ([]models.SkillAssessment, error)
	GetLatestSkillAssessment(ctx context.Context, studentID uint) (*models.SkillAssessment, error)
	CreateSkillAssessment(ctx context.Context, in models.NewSkillAssessment) (*models.SkillAssessment, error)

	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.SessionWithDetails, error)
	GetSession(ctx context.Context, id uint) (*models.SessionWithDetails, error)
	CreateSession(ctx context.Context, in models.NewSession) (*models.Session, error)
	UpdateSession(ctx context.Context, id uint, patch models.SessionPatch) (*models.Session, error)
	DeleteSession(ctx context.Context, id uint) (bool, error)

	ListAttendance(ctx context.Context, sessionID uint) ([]models.AttendanceWithStudent, error)
	MarkAttendance(ctx context.Context, in models.NewAttendance) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, sessionID, studentID uint, present bool) (*models.Attendance, error)

	ListTrainingPlans(ctx context.Context, filter models.TrainingPlanFilter) ([]models.TrainingPlanWithDetails, error)
	GetTrainingPlan(ctx context.Context, id uint) (*models.TrainingPlanWithDetails, error)
	CreateTrainingPlan(ctx context.Context, in models.NewTrainingPlan) (*models.TrainingPlan, error)
	UpdateTrainingPlan(ctx context.Context, id uint, patch models.TrainingPlanPatch) (*models.TrainingPlan, error)
	DeleteTrainingPlan(ctx context.Context, id uint) (bool, error)

	ListProgressSummaries(ctx context.Context, studentID uint) ([]models.ProgressSummary, error)
	CreateProgressSummary(ctx context.Context, in models.NewProgressSummary) (*models.ProgressSummary, error)

	ListDrillRecommendations(ctx context.Context, limit int) ([]models.DrillRecommendation, error)
	CreateDrillRecommendation(ctx context.Context, in models.NewDrillRecommendation) (*models.DrillRecommendation, error)

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// SessionQuery selects sessions by batch and a half-open [From, To) date range.
type SessionQuery struct {
	BatchID *uint
	From    *time.Time
	To      *time.Time
}

// AttendanceQuery selects attendance rows. Rows come back in id order.
type AttendanceQuery struct {
	SessionID *uint
	StudentID *uint
}

// AttendanceApply fills a new or existing attendance row. exists reports
// whether the row was already stored.
type AttendanceApply func(a *models.Attendance, exists bool) error

// EntityStore is the keyed record store a backend provides.
//
// Insert assigns the next id for the record type and never reuses one. Find
// returns (nil, nil) for unknown ids. Modify loads the record, hands it to fn
// and persists the result atomically, returning (nil, nil) when the id is
// unknown. Remove reports whether a record existed. Plain lists are in id
// order; assessments, summaries and drill recommendations are newest first
// with the higher id winning ties.
type EntityStore interface {
	InsertUser(ctx context.Context, u *models.User) error
	FindUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUsers(ctx context.Context) ([]models.User, error)
	ModifyUser(ctx context.Context, id uint, fn func(*models.User) error) (*models.User, error)
	RemoveUser(ctx context.Context, id uint) (bool, error)

	InsertBatch(ctx context.Context, b *models.Batch) error
	FindBatch(ctx context.Context, id uint) (*models.Batch, error)
	FindBatches(ctx context.Context, filter models.BatchFilter) ([]models.Batch, error)
	ModifyBatch(ctx context.Context, id uint, fn func(*models.Batch) error) (*models.Batch, error)
	RemoveBatch(ctx context.Context, id uint) (bool, error)

	InsertStudent(ctx context.Context, s *models.Student) error
	FindStudent(ctx context.Context, id uint) (*models.Student, error)
	FindStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	ModifyStudent(ctx context.Context, id uint, fn func(*models.Student) error) (*models.Student, error)
	RemoveStudent(ctx context.Context, id uint) (bool, error)

	InsertSkillAssessment(ctx context.Context, a *models.SkillAssessment) error
	// FindSkillAssessments returns a student's assessments newest first.
	// A positive limit caps the result.
	FindSkillAssessments(ctx context.Context, studentID uint, limit int) ([]models.SkillAssessment, error)

	InsertSession(ctx context.Context, s *models.Session) error
	FindSession(ctx context.Context, id uint) (*models.Session, error)
	FindSessions(ctx context.Context, q SessionQuery) ([]models.Session, error)
	ModifySession(ctx context.Context, id uint, fn func(*models.Session) error) (*models.Session, error)
	RemoveSession(ctx context.Context, id uint) (bool, error)

	FindAttendance(ctx context.Context, q AttendanceQuery) ([]models.Attendance, error)
	// SaveAttendance upserts the row keyed by (sessionID, studentID).
	SaveAttendance(ctx context.Context, sessionID, studentID uint, fn AttendanceApply) (*models.Attendance, error)

	InsertTrainingPlan(ctx context.Context, p *models.TrainingPlan) error
	FindTrainingPlan(ctx context.Context, id uint) (*models.TrainingPlan, error)
	FindTrainingPlans(ctx context.Context, filter models.TrainingPlanFilter) ([]models.TrainingPlan, error)
	ModifyTrainingPlan(ctx context.Context, id uint, fn func(*models.TrainingPlan) error) (*models.TrainingPlan, error)
	RemoveTrainingPlan(ctx context.Context, id uint) (bool, error)

	InsertProgressSummary(ctx context.Context, p *models.ProgressSummary) error
	FindProgressSummaries(ctx context.Context, studentID uint) ([]models.ProgressSummary, error)

	InsertDrillRecommendation(ctx context.Context, d *models.DrillRecommendation) error
	// FindDrillRecommendations returns the newest records; a positive limit caps the result.
	FindDrillRecommendations(ctx context.Context, limit int) ([]models.DrillRecommendation, error)

	Close() error
}
