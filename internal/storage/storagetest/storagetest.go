// Package storagetest holds the behavior every storage backend must share.
// Backend packages call Run from their own tests.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/principal"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

// Start is the initial time of the test clock.
var Start = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// Factory returns an empty backend. It is called once per subtest.
type Factory func(t *testing.T) storage.EntityStore

type fixture struct {
	svc   *storage.Service
	clock *testclock.Clock
	ctx   context.Context
}

func newFixture(t *testing.T, factory Factory, loc *time.Location) *fixture {
	store := factory(t)
	t.Cleanup(func() { _ = store.Close() })
	clk := testclock.NewClock(Start)
	return &fixture{
		svc:   storage.NewService(store, storage.ServiceConfig{Clock: clk, Location: loc}),
		clock: clk,
		ctx:   context.Background(),
	}
}

func ptr[T any](v T) *T { return &v }

// batch stores a coachless batch for records that need one to point at.
func (f *fixture) batch(t *testing.T) *models.Batch {
	t.Helper()
	b, err := f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "Squad", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	return b
}

// Run executes the shared contract against backends built by factory.
func Run(t *testing.T, factory Factory) {
	cases := []struct {
		name string
		fn   func(t *testing.T, f *fixture)
	}{
		{"StudentLifecycle", testStudentLifecycle},
		{"IDsNeverReused", testIDsNeverReused},
		{"UnknownIDs", testUnknownIDs},
		{"PartialUpdatePreservesFields", testPartialUpdate},
		{"NullableFieldsClear", testNullableClear},
		{"LatestSkillAssessment", testLatestSkillAssessment},
		{"OverallScore", testOverallScore},
		{"OrphanedReferences", testOrphanedReferences},
		{"AttendanceUpsert", testAttendanceUpsert},
		{"AtRiskOrder", testAtRiskOrder},
		{"ListFilters", testListFilters},
		{"Validation", testValidation},
		{"DuplicateUsername", testDuplicateUsername},
		{"SessionTransitions", testSessionTransitions},
		{"UnknownReferences", testUnknownReferences},
		{"PrincipalOwnership", testPrincipalOwnership},
		{"TrainingPlanDetails", testTrainingPlanDetails},
		{"NewestFirstLists", testNewestFirstLists},
		{"DashboardStats", testDashboardStats},
		{"AttendanceSummary", testAttendanceSummary},
		{"ReturnedRecordsAreCopies", testReturnedRecordsAreCopies},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newFixture(t, factory, time.UTC))
		})
	}
	t.Run("SessionDateFilter", func(t *testing.T) {
		testSessionDateFilter(t, factory)
	})
}

func testStudentLifecycle(t *testing.T, f *fixture) {
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)
	assert.Equal(t, uint(1), st.ID)
	assert.Equal(t, models.StudentActive, st.Status)
	assert.True(t, st.JoinDate.Equal(Start))
	assert.Nil(t, st.BatchID)

	_, err = f.svc.UpdateStudent(f.ctx, st.ID, models.StudentPatch{Status: ptr(models.StudentAtRisk)})
	require.NoError(t, err)

	atRisk, err := f.svc.ListAtRiskStudents(f.ctx)
	require.NoError(t, err)
	require.Len(t, atRisk, 1)
	assert.Equal(t, st.ID, atRisk[0].ID)

	ok, err := f.svc.DeleteStudent(f.ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	atRisk, err = f.svc.ListAtRiskStudents(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, atRisk)

	got, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testIDsNeverReused(t *testing.T, f *fixture) {
	newBatch := models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner}
	first, err := f.svc.CreateBatch(f.ctx, newBatch)
	require.NoError(t, err)
	second, err := f.svc.CreateBatch(f.ctx, newBatch)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	ok, err := f.svc.DeleteBatch(f.ctx, second.ID)
	require.NoError(t, err)
	require.True(t, ok)

	third, err := f.svc.CreateBatch(f.ctx, newBatch)
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)

	// counters are independent per record type
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Liam", Age: 9})
	require.NoError(t, err)
	assert.Equal(t, uint(1), st.ID)
}

func testUnknownIDs(t *testing.T, f *fixture) {
	st, err := f.svc.UpdateStudent(f.ctx, 42, models.StudentPatch{Name: ptr("Ghost")})
	require.NoError(t, err)
	assert.Nil(t, st)

	students, err := f.svc.ListStudents(f.ctx, models.StudentFilter{})
	require.NoError(t, err)
	assert.Empty(t, students)

	ok, err := f.svc.DeleteStudent(f.ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	b, err := f.svc.GetBatch(f.ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, b)

	se, err := f.svc.GetSession(f.ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, se)

	p, err := f.svc.GetTrainingPlan(f.ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, p)

	u, err := f.svc.GetUserByUsername(f.ctx, "nobody@academy.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	latest, err := f.svc.GetLatestSkillAssessment(f.ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, latest)

	summary, err := f.svc.StudentAttendance(f.ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func testPartialUpdate(t *testing.T, f *fixture) {
	created, err := f.svc.CreateStudent(f.ctx, models.NewStudent{
		Name:       "Sophia",
		Age:        12,
		Email:      ptr("sophia@example.com"),
		ParentName: ptr("Anna"),
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStudent(f.ctx, created.ID, models.StudentPatch{Age: ptr(13)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 13, updated.Age)
	assert.Equal(t, "Sophia", updated.Name)
	assert.Equal(t, ptr("sophia@example.com"), updated.Email)
	assert.Equal(t, ptr("Anna"), updated.ParentName)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	got, err := f.svc.GetStudent(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, got.Age)
	assert.Equal(t, ptr("sophia@example.com"), got.Email)
}

func testNullableClear(t *testing.T, f *fixture) {
	b, err := f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "Teens", AgeGroup: "13-16", Level: models.LevelIntermediate})
	require.NoError(t, err)
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Noah", Age: 14, BatchID: &b.ID, Phone: ptr("555-0101")})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStudent(f.ctx, st.ID, models.StudentPatch{
		BatchID: models.Null[uint](),
		Phone:   models.Some("555-0199"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.BatchID)
	assert.Equal(t, ptr("555-0199"), updated.Phone)

	got, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BatchID)
	assert.Nil(t, got.Batch)
}

func testLatestSkillAssessment(t *testing.T, f *fixture) {
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)

	_, err = f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{
		StudentID: st.ID, Serve: 6, Footwork: 8, Stamina: 6, MentalFocus: 8,
	})
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	second, err := f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{
		StudentID: st.ID, Serve: 8, Footwork: 8, Stamina: 8, MentalFocus: 8,
	})
	require.NoError(t, err)

	latest, err := f.svc.GetLatestSkillAssessment(f.ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 8, latest.Overall)

	// same timestamp: the later insert wins
	third, err := f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{
		StudentID: st.ID, Serve: 5, Footwork: 5, Stamina: 5, MentalFocus: 5,
	})
	require.NoError(t, err)
	latest, err = f.svc.GetLatestSkillAssessment(f.ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, third.ID, latest.ID)

	view, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, view.LatestSkillAssessment)
	assert.Equal(t, third.ID, view.LatestSkillAssessment.ID)
}

func testOverallScore(t *testing.T, f *fixture) {
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Ava", Age: 11})
	require.NoError(t, err)

	for _, tc := range []struct {
		scores  [4]int
		overall int
	}{
		{[4]int{6, 8, 6, 8}, 7},
		{[4]int{7, 8, 7, 8}, 8},
		{[4]int{1, 1, 1, 2}, 1},
		{[4]int{10, 10, 10, 10}, 10},
	} {
		a, err := f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{
			StudentID:   st.ID,
			Serve:       tc.scores[0],
			Footwork:    tc.scores[1],
			Stamina:     tc.scores[2],
			MentalFocus: tc.scores[3],
		})
		require.NoError(t, err)
		assert.Equal(t, tc.overall, a.Overall, "scores %v", tc.scores)
	}
}

func testOrphanedReferences(t *testing.T, f *fixture) {
	coach, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "hash", AcademyName: "Elite"})
	require.NoError(t, err)
	b, err := f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner, CoachID: &coach.ID})
	require.NoError(t, err)
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10, BatchID: &b.ID})
	require.NoError(t, err)
	se, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, CoachID: coach.ID, Date: Start})
	require.NoError(t, err)
	_, err = f.svc.MarkAttendance(f.ctx, models.NewAttendance{SessionID: se.ID, StudentID: st.ID, Present: ptr(true)})
	require.NoError(t, err)

	view, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Batch)
	assert.Equal(t, "Juniors", view.Batch.Name)

	_, err = f.svc.DeleteBatch(f.ctx, b.ID)
	require.NoError(t, err)
	_, err = f.svc.DeleteUser(f.ctx, coach.ID)
	require.NoError(t, err)
	_, err = f.svc.DeleteStudent(f.ctx, st.ID)
	require.NoError(t, err)

	sessions, err := f.svc.ListSessions(f.ctx, models.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Nil(t, sessions[0].Batch)
	assert.Nil(t, sessions[0].Coach)
	require.Len(t, sessions[0].Attendance, 1)
	assert.Nil(t, sessions[0].Attendance[0].Student)
}

func testAttendanceUpsert(t *testing.T, f *fixture) {
	emma, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)
	liam, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Liam", Age: 11})
	require.NoError(t, err)
	b := f.batch(t)
	se, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, Duration: ptr(60)})
	require.NoError(t, err)
	assert.Equal(t, models.SessionScheduled, se.Status)

	_, err = f.svc.MarkAttendance(f.ctx, models.NewAttendance{SessionID: se.ID, StudentID: emma.ID, Present: ptr(true)})
	require.NoError(t, err)
	liamRow, err := f.svc.MarkAttendance(f.ctx, models.NewAttendance{SessionID: se.ID, StudentID: liam.ID})
	require.NoError(t, err)
	assert.False(t, liamRow.Present)

	details, err := f.svc.GetSession(f.ctx, se.ID)
	require.NoError(t, err)
	require.Len(t, details.Attendance, 2)
	assert.Equal(t, "Emma", details.Attendance[0].Student.Name)
	assert.True(t, details.Attendance[0].Present)
	assert.Equal(t, "Liam", details.Attendance[1].Student.Name)
	assert.False(t, details.Attendance[1].Present)

	for i := 0; i < 2; i++ {
		updated, err := f.svc.UpdateAttendance(f.ctx, se.ID, liam.ID, true)
		require.NoError(t, err)
		assert.Equal(t, liamRow.ID, updated.ID)
		assert.True(t, updated.Present)
	}

	rows, err := f.svc.ListAttendance(f.ctx, se.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[1].Present)

	// upsert creates exactly one row for an unseen pair
	other, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID})
	require.NoError(t, err)
	_, err = f.svc.UpdateAttendance(f.ctx, other.ID, emma.ID, false)
	require.NoError(t, err)
	_, err = f.svc.UpdateAttendance(f.ctx, other.ID, emma.ID, false)
	require.NoError(t, err)
	rows, err = f.svc.ListAttendance(f.ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Present)
}

func testAtRiskOrder(t *testing.T, f *fixture) {
	names := []string{"A", "B", "C", "D", "E"}
	for i, name := range names {
		status := models.StudentActive
		if i%2 == 0 {
			status = models.StudentAtRisk
		}
		_, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: name, Age: 10, Status: status})
		require.NoError(t, err)
	}
	atRisk, err := f.svc.ListAtRiskStudents(f.ctx)
	require.NoError(t, err)
	var got []string
	for _, s := range atRisk {
		got = append(got, s.Name)
	}
	assert.Equal(t, []string{"A", "C", "E"}, got)
}

func testListFilters(t *testing.T, f *fixture) {
	coach, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "hash", AcademyName: "Elite"})
	require.NoError(t, err)
	b1, err := f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "One", AgeGroup: "8-10", Level: models.LevelBeginner, CoachID: &coach.ID})
	require.NoError(t, err)
	b2, err := f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "Two", AgeGroup: "11-13", Level: models.LevelAdvanced})
	require.NoError(t, err)

	batches, err := f.svc.ListBatches(f.ctx, models.BatchFilter{CoachID: &coach.ID})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, b1.ID, batches[0].ID)

	for _, b := range []*models.Batch{b1, b2, b1} {
		_, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "S", Age: 10, BatchID: &b.ID})
		require.NoError(t, err)
	}
	students, err := f.svc.ListStudents(f.ctx, models.StudentFilter{BatchID: &b1.ID})
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Less(t, students[0].ID, students[1].ID)
	assert.Equal(t, "One", students[0].Batch.Name)

	_, err = f.svc.CreateTrainingPlan(f.ctx, models.NewTrainingPlan{BatchID: &b2.ID, Week: 1})
	require.NoError(t, err)
	_, err = f.svc.CreateTrainingPlan(f.ctx, models.NewTrainingPlan{StudentID: &students[0].ID, Week: 1})
	require.NoError(t, err)
	plans, err := f.svc.ListTrainingPlans(f.ctx, models.TrainingPlanFilter{BatchID: &b2.ID})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Two", plans[0].Batch.Name)

	_, err = f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b1.ID})
	require.NoError(t, err)
	_, err = f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b2.ID})
	require.NoError(t, err)
	sessions, err := f.svc.ListSessions(f.ctx, models.SessionFilter{BatchID: &b2.ID})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, b2.ID, sessions[0].BatchID)
	assert.NotNil(t, sessions[0].Attendance)
}

func testValidation(t *testing.T, f *fixture) {
	_, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Young", Age: -1})
	assert.True(t, errors.Is(err, errors.NotValid), "negative age: %v", err)

	_, err = f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Odd", Age: 9, Status: "graduated"})
	assert.True(t, errors.Is(err, errors.NotValid), "bad status: %v", err)

	_, err = f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{StudentID: 1, Serve: 11, Footwork: 5, Stamina: 5, MentalFocus: 5})
	assert.True(t, errors.Is(err, errors.NotValid), "score above range: %v", err)

	_, err = f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{StudentID: 1, Serve: 5, Footwork: 0, Stamina: 5, MentalFocus: 5})
	assert.True(t, errors.Is(err, errors.NotValid), "score below range: %v", err)

	_, err = f.svc.CreateTrainingPlan(f.ctx, models.NewTrainingPlan{Week: 1})
	assert.True(t, errors.Is(err, errors.NotValid), "plan without owner: %v", err)

	_, err = f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "X", AgeGroup: "8-10", Level: "pro"})
	assert.True(t, errors.Is(err, errors.NotValid), "bad level: %v", err)

	_, err = f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "X", AgeGroup: "8-10", Level: models.LevelBeginner, CoachID: ptr(uint(99))})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown coach: %v", err)

	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Valid", Age: 0})
	require.NoError(t, err)
	_, err = f.svc.UpdateStudent(f.ctx, st.ID, models.StudentPatch{Age: ptr(-5)})
	assert.True(t, errors.Is(err, errors.NotValid), "negative age update: %v", err)

	got, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Age)

	students, err := f.svc.ListStudents(f.ctx, models.StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func testDuplicateUsername(t *testing.T, f *fixture) {
	_, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "hash", AcademyName: "Elite"})
	require.NoError(t, err)
	_, err = f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "other", AcademyName: "Elite"})
	assert.True(t, errors.Is(err, errors.AlreadyExists), "duplicate create: %v", err)

	other, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "admin@academy.com", Password: "hash", Role: models.RoleAdmin, AcademyName: "Elite"})
	require.NoError(t, err)
	_, err = f.svc.UpdateUser(f.ctx, other.ID, models.UserPatch{Username: ptr("coach@academy.com")})
	assert.True(t, errors.Is(err, errors.AlreadyExists), "duplicate rename: %v", err)

	users, err := f.svc.ListUsers(f.ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.RoleCoach, users[0].Role)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
}

func testSessionTransitions(t *testing.T, f *fixture) {
	se, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: f.batch(t).ID})
	require.NoError(t, err)

	updated, err := f.svc.UpdateSession(f.ctx, se.ID, models.SessionPatch{Status: ptr(models.SessionActive)})
	require.NoError(t, err)
	assert.Equal(t, models.SessionActive, updated.Status)

	_, err = f.svc.UpdateSession(f.ctx, se.ID, models.SessionPatch{Status: ptr(models.SessionScheduled)})
	assert.True(t, errors.Is(err, errors.NotValid), "backwards: %v", err)

	updated, err = f.svc.UpdateSession(f.ctx, se.ID, models.SessionPatch{Status: ptr(models.SessionCompleted), Court: models.Some("Court 2")})
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, updated.Status)
	assert.Equal(t, ptr("Court 2"), updated.Court)

	got, err := f.svc.GetSession(f.ctx, se.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, got.Status)

	ok, err := f.svc.DeleteSession(f.ctx, se.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.svc.DeleteSession(f.ctx, se.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testUnknownReferences(t *testing.T, f *fixture) {
	coach, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "hash", AcademyName: "Elite"})
	require.NoError(t, err)
	b := f.batch(t)

	_, err = f.svc.CreateSession(f.ctx, models.NewSession{BatchID: 99, CoachID: coach.ID})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown batch: %v", err)
	_, err = f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, CoachID: 999})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown coach: %v", err)

	se, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, CoachID: coach.ID})
	require.NoError(t, err)
	_, err = f.svc.UpdateSession(f.ctx, se.ID, models.SessionPatch{BatchID: ptr(uint(777))})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown batch update: %v", err)
	_, err = f.svc.UpdateSession(f.ctx, se.ID, models.SessionPatch{CoachID: ptr(uint(999))})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown coach update: %v", err)

	got, err := f.svc.GetSession(f.ctx, se.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.BatchID)
	assert.Equal(t, coach.ID, got.CoachID)

	_, err = f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Lost", Age: 10, BatchID: ptr(uint(999))})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown student batch: %v", err)

	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10, BatchID: &b.ID})
	require.NoError(t, err)
	_, err = f.svc.UpdateStudent(f.ctx, st.ID, models.StudentPatch{BatchID: models.Some(uint(999))})
	assert.True(t, errors.Is(err, errors.NotValid), "unknown student batch update: %v", err)

	// clearing the batch needs no lookup
	cleared, err := f.svc.UpdateStudent(f.ctx, st.ID, models.StudentPatch{BatchID: models.Null[uint]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.BatchID)

	students, err := f.svc.ListStudents(f.ctx, models.StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func testPrincipalOwnership(t *testing.T, f *fixture) {
	coach, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "hash", AcademyName: "Elite"})
	require.NoError(t, err)
	ctx := principal.WithPrincipal(f.ctx, principal.Principal{UserID: coach.ID, Role: coach.Role})

	b, err := f.svc.CreateBatch(ctx, models.NewBatch{Name: "Mine", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	require.NotNil(t, b.CoachID)
	assert.Equal(t, coach.ID, *b.CoachID)

	se, err := f.svc.CreateSession(ctx, models.NewSession{BatchID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, coach.ID, se.CoachID)

	st, err := f.svc.CreateStudent(ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)
	a, err := f.svc.CreateSkillAssessment(ctx, models.NewSkillAssessment{StudentID: st.ID, Serve: 5, Footwork: 5, Stamina: 5, MentalFocus: 5})
	require.NoError(t, err)
	assert.Equal(t, ptr(coach.ID), a.AssessedBy)

	d, err := f.svc.CreateDrillRecommendation(ctx, models.NewDrillRecommendation{Query: "serve"})
	require.NoError(t, err)
	assert.Equal(t, ptr(coach.ID), d.CreatedBy)
	assert.Equal(t, models.ContentDrillList, d.Recommendations.Kind)

	// an anonymous context leaves ownership empty
	anon, err := f.svc.CreateBatch(f.ctx, models.NewBatch{Name: "Open", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	assert.Nil(t, anon.CoachID)
}

func testTrainingPlanDetails(t *testing.T, f *fixture) {
	coach, err := f.svc.CreateUser(f.ctx, models.NewUser{Username: "coach@academy.com", Password: "hash", AcademyName: "Elite"})
	require.NoError(t, err)
	ctx := principal.WithPrincipal(f.ctx, principal.Principal{UserID: coach.ID, Role: coach.Role})
	st, err := f.svc.CreateStudent(ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)

	content := models.NewPlanContent(models.WeeklyPlan{
		Week:       3,
		FocusAreas: []string{"serve"},
		Days: []models.PlanDay{{Day: "Monday", Drills: []models.Drill{{
			Name: "Target Serve Practice", Duration: "20 minutes", Difficulty: "beginner",
			Equipment: []string{"Tennis balls"}, Steps: []string{"Serve"},
		}}}},
		ProgressGoals: []string{"Land 7 of 10 serves"},
	})
	plan, err := f.svc.CreateTrainingPlan(ctx, models.NewTrainingPlan{
		StudentID:  &st.ID,
		Week:       3,
		FocusAreas: []string{"serve", "footwork"},
		Drills:     content,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PlanGenerated, plan.Status)
	assert.Equal(t, models.GeneratedByAI, plan.GeneratedBy)

	got, err := f.svc.GetTrainingPlan(f.ctx, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StringSlice{"serve", "footwork"}, got.FocusAreas)
	require.NotNil(t, got.Drills)
	assert.Equal(t, content, got.Drills)
	assert.Equal(t, "Emma", got.Student.Name)
	assert.Nil(t, got.Batch)
	require.NotNil(t, got.Creator)
	assert.Equal(t, coach.ID, got.Creator.ID)

	updated, err := f.svc.UpdateTrainingPlan(f.ctx, plan.ID, models.TrainingPlanPatch{Status: ptr(models.PlanApproved)})
	require.NoError(t, err)
	assert.Equal(t, models.PlanApproved, updated.Status)
	assert.Equal(t, models.StringSlice{"serve", "footwork"}, updated.FocusAreas)

	_, err = f.svc.UpdateTrainingPlan(f.ctx, plan.ID, models.TrainingPlanPatch{StudentID: models.Null[uint]()})
	assert.True(t, errors.Is(err, errors.NotValid), "orphaned plan: %v", err)

	ok, err := f.svc.DeleteTrainingPlan(f.ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func testNewestFirstLists(t *testing.T, f *fixture) {
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		_, err := f.svc.CreateProgressSummary(f.ctx, models.NewProgressSummary{
			StudentID: st.ID, Week: i, Summary: "steady",
			Improvements: []string{"serve"},
		})
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
	}
	summaries, err := f.svc.ListProgressSummaries(f.ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, 3, summaries[0].Week)
	assert.Equal(t, 1, summaries[2].Week)
	assert.Equal(t, models.StringSlice{}, summaries[0].Concerns)
	assert.Equal(t, models.GeneratedByAI, summaries[0].GeneratedBy)

	for i := 0; i < 12; i++ {
		_, err := f.svc.CreateDrillRecommendation(f.ctx, models.NewDrillRecommendation{
			Query:           "footwork",
			Recommendations: models.NewDrillContent([]models.Drill{{Name: "Ladder"}}),
		})
		require.NoError(t, err)
	}
	drills, err := f.svc.ListDrillRecommendations(f.ctx, 0)
	require.NoError(t, err)
	require.Len(t, drills, storage.DefaultDrillRecommendationLimit)
	assert.Equal(t, uint(12), drills[0].ID)
	assert.Equal(t, uint(3), drills[9].ID)
	assert.Equal(t, "Ladder", drills[0].Recommendations.Drills[0].Name)

	assessments, err := f.svc.ListSkillAssessments(f.ctx, st.ID)
	require.NoError(t, err)
	assert.Empty(t, assessments)
}

func testDashboardStats(t *testing.T, f *fixture) {
	stats, err := f.svc.DashboardStats(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{AverageImprovement: "+0.0"}, stats)

	improving, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Up", Age: 10})
	require.NoError(t, err)
	declining, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Down", Age: 10, Status: models.StudentAtRisk})
	require.NoError(t, err)
	_, err = f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Gone", Age: 10, Status: models.StudentInactive})
	require.NoError(t, err)

	assess := func(id uint, score int) {
		_, err := f.svc.CreateSkillAssessment(f.ctx, models.NewSkillAssessment{
			StudentID: id, Serve: score, Footwork: score, Stamina: score, MentalFocus: score,
		})
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
	}
	assess(improving.ID, 4)
	assess(improving.ID, 5)
	assess(improving.ID, 8)
	assess(declining.ID, 6)
	assess(declining.ID, 5)

	b := f.batch(t)
	_, err = f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, Date: Start.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, Date: Start.AddDate(0, 0, 1)})
	require.NoError(t, err)

	stats, err = f.svc.DashboardStats(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SessionsToday)
	assert.Equal(t, 1, stats.ActiveStudents)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.AtRiskStudents)
	// (+3 and -1) averaged
	assert.Equal(t, "+1.0", stats.AverageImprovement)
}

func testAttendanceSummary(t *testing.T, f *fixture) {
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)

	b := f.batch(t)

	// marked out of session order on purpose
	dates := []time.Time{Start.AddDate(0, 0, 3), Start, Start.AddDate(0, 0, 1), Start.AddDate(0, 0, 2)}
	present := []bool{false, true, true, false}
	for i, d := range dates {
		se, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, Date: d})
		require.NoError(t, err)
		_, err = f.svc.MarkAttendance(f.ctx, models.NewAttendance{SessionID: se.ID, StudentID: st.ID, Present: &present[i]})
		require.NoError(t, err)
	}

	sum, err := f.svc.StudentAttendance(f.ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.Present)
	assert.Equal(t, 50.0, sum.Rate)
	assert.Equal(t, 2, sum.ConsecutiveMissed)
}

func testReturnedRecordsAreCopies(t *testing.T, f *fixture) {
	st, err := f.svc.CreateStudent(f.ctx, models.NewStudent{Name: "Emma", Age: 10, Email: ptr("emma@example.com")})
	require.NoError(t, err)
	st.Name = "Changed"
	*st.Email = "changed@example.com"

	got, err := f.svc.GetStudent(f.ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma", got.Name)
	assert.Equal(t, ptr("emma@example.com"), got.Email)
}

func testSessionDateFilter(t *testing.T, factory Factory) {
	// UTC-5 all year, so local midnight is 05:00 UTC
	loc := time.FixedZone("EST", -5*60*60)
	f := newFixture(t, factory, loc)

	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, loc)
	inside := []time.Time{day, day.Add(9 * time.Hour), day.Add(23*time.Hour + 59*time.Minute)}
	outside := []time.Time{day.Add(-time.Minute), day.AddDate(0, 0, 1)}

	b := f.batch(t)
	var want []uint
	for _, d := range inside {
		se, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, Date: d})
		require.NoError(t, err)
		want = append(want, se.ID)
	}
	for _, d := range outside {
		_, err := f.svc.CreateSession(f.ctx, models.NewSession{BatchID: b.ID, Date: d})
		require.NoError(t, err)
	}

	// any instant on that local day selects it
	probe := time.Date(2025, time.March, 12, 20, 30, 0, 0, time.UTC)
	sessions, err := f.svc.ListSessions(f.ctx, models.SessionFilter{Date: &probe})
	require.NoError(t, err)
	var got []uint
	for _, s := range sessions {
		got = append(got, s.ID)
	}
	assert.Equal(t, want, got)

	all, err := f.svc.ListSessions(f.ctx, models.SessionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.True(t, all[0].Date.Equal(day))
}
