// Package seed loads the academy sample data set into an empty store.
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
)

// Sample credentials, printed at startup in local runs.
const (
	CoachUsername  = "coach@academy.com"
	CoachPassword  = "password123"
	AdminUsername  = "admin@academy.com"
	AdminPassword  = "admin123"
	SarahUsername  = "coach.sarah@academy.com"
	academyName    = "Elite Tennis Academy"
	profilePicture = "https://images.unsplash.com/photo-%s?w=100&h=100&fit=crop&crop=face"
)

// Result counts what Load created.
type Result struct {
	Users       int
	Batches     int
	Students    int
	Sessions    int
	Assessments int
	Attendance  int
	Plans       int
	Summaries   int
	Drills      int
}

// Load writes the sample set through store. It returns a nil Result when
// any user already exists.
func Load(ctx context.Context, store storage.Storage, clk clock.Clock, log *slog.Logger) (*Result, error) {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "checking for existing users")
	}
	if len(users) > 0 {
		log.InfoContext(ctx, "sample data skipped, store is not empty")
		return nil, nil
	}
	res, err := load(ctx, store, clk.Now())
	if err != nil {
		return nil, errors.Annotate(err, "loading sample data")
	}
	log.InfoContext(ctx, "sample data loaded",
		slog.Int("users", res.Users),
		slog.Int("batches", res.Batches),
		slog.Int("students", res.Students),
		slog.Int("sessions", res.Sessions),
		slog.Int("assessments", res.Assessments),
		slog.Int("attendance", res.Attendance),
		slog.Int("plans", res.Plans),
		slog.Int("summaries", res.Summaries),
		slog.Int("drills", res.Drills),
	)
	return res, nil
}

func load(ctx context.Context, store storage.Storage, now time.Time) (*Result, error) {
	res := &Result{}

	accounts := []struct {
		username, password string
		role               models.Role
	}{
		{CoachUsername, CoachPassword, models.RoleCoach},
		{AdminUsername, AdminPassword, models.RoleAdmin},
		{SarahUsername, CoachPassword, models.RoleCoach},
	}
	users := make([]*models.User, len(accounts))
	for i, a := range accounts {
		hash, err := utils.HashPassword(a.password)
		if err != nil {
			return nil, errors.Annotate(err, "hashing sample password")
		}
		users[i], err = store.CreateUser(ctx, models.NewUser{Username: a.username, Password: hash, Role: a.role, AcademyName: academyName})
		if err != nil {
			return nil, err
		}
		res.Users++
	}
	coach, sarah := users[0], users[2]

	batchData := []models.NewBatch{
		{Name: "Junior Beginners", AgeGroup: "8-12", Level: models.LevelBeginner, CoachID: &coach.ID},
		{Name: "Teen Intermediate", AgeGroup: "13-17", Level: models.LevelIntermediate, CoachID: &coach.ID},
		{Name: "Adult Advanced", AgeGroup: "18+", Level: models.LevelAdvanced, CoachID: &sarah.ID},
		{Name: "Kids Starter", AgeGroup: "6-10", Level: models.LevelBeginner, CoachID: &sarah.ID},
	}
	batches := make([]*models.Batch, len(batchData))
	for i, in := range batchData {
		b, err := store.CreateBatch(ctx, in)
		if err != nil {
			return nil, err
		}
		batches[i] = b
		res.Batches++
	}

	studentData := []models.NewStudent{
		student("Emma Johnson", 10, "emma.parent@email.com", "+1-555-0101", "Sarah Johnson", "+1-555-0102", batches[0], models.StudentActive, "1544005313-94ddf0286df2"),
		student("Lucas Martinez", 15, "lucas.martinez@email.com", "+1-555-0201", "Maria Martinez", "+1-555-0202", batches[1], models.StudentActive, "1507003211169-0a1dd7228f2d"),
		student("Sophia Chen", 12, "sophia.parent@email.com", "+1-555-0301", "David Chen", "+1-555-0302", batches[0], models.StudentActive, "1494790108755-2616b612b1e2"),
		student("Alex Thompson", 16, "alex.thompson@email.com", "+1-555-0401", "Jennifer Thompson", "+1-555-0402", batches[1], models.StudentAtRisk, "1500648767791-00dcc994a43e"),
		student("Maya Patel", 24, "maya.patel@email.com", "+1-555-0501", "", "", batches[2], models.StudentActive, "1438761681033-6461ffad8d80"),
		student("Ryan O'Connor", 8, "ryan.parent@email.com", "+1-555-0601", "Michael O'Connor", "+1-555-0602", batches[3], models.StudentActive, "1472099645785-5658abf4ff4e"),
	}
	students := make([]*models.Student, len(studentData))
	for i, in := range studentData {
		st, err := store.CreateStudent(ctx, in)
		if err != nil {
			return nil, err
		}
		students[i] = st
		res.Students++
	}

	sessionData := []struct {
		in     models.NewSession
		status models.SessionStatus
	}{
		{session(now.Add(-24*time.Hour), coach, batches[0], 90, "Court 1", "Focused on basic forehand technique and footwork"), models.SessionCompleted},
		{session(now, coach, batches[1], 120, "Court 2", "Advanced serve practice and match play"), models.SessionScheduled},
		{session(now.Add(24*time.Hour), sarah, batches[2], 120, "Court 3", "Tournament preparation - high intensity drills"), models.SessionScheduled},
	}
	sessions := make([]*models.Session, len(sessionData))
	for i, sd := range sessionData {
		se, err := store.CreateSession(ctx, sd.in)
		if err != nil {
			return nil, err
		}
		if sd.status != se.Status {
			status := sd.status
			if se, err = store.UpdateSession(ctx, se.ID, models.SessionPatch{Status: &status}); err != nil {
				return nil, err
			}
		}
		sessions[i] = se
		res.Sessions++
	}

	assessmentData := []models.NewSkillAssessment{
		assessment(students[0], sessions[0], coach, 6, 7, 8, 7, "Good improvement in serve consistency"),
		assessment(students[1], sessions[0], coach, 8, 8, 9, 8, "Strong player, ready for tournament play"),
		assessment(students[2], sessions[0], coach, 5, 6, 7, 6, "Needs more practice on serve technique"),
	}
	for _, in := range assessmentData {
		if _, err := store.CreateSkillAssessment(ctx, in); err != nil {
			return nil, err
		}
		res.Assessments++
	}

	attendanceData := []models.NewAttendance{
		attendance(sessions[0], students[0], true, "Excellent participation"),
		attendance(sessions[0], students[1], true, "Great focus during practice"),
		attendance(sessions[0], students[2], true, "Improved technique"),
		attendance(sessions[1], students[3], false, "Missed due to family vacation"),
	}
	for _, in := range attendanceData {
		if _, err := store.MarkAttendance(ctx, in); err != nil {
			return nil, err
		}
		res.Attendance++
	}

	for _, in := range plans(students, batches, coach) {
		if _, err := store.CreateTrainingPlan(ctx, in); err != nil {
			return nil, err
		}
		res.Plans++
	}
	for _, in := range summaries(students) {
		if _, err := store.CreateProgressSummary(ctx, in); err != nil {
			return nil, err
		}
		res.Summaries++
	}
	for _, in := range drillQueries(coach) {
		if _, err := store.CreateDrillRecommendation(ctx, in); err != nil {
			return nil, err
		}
		res.Drills++
	}
	return res, nil
}
