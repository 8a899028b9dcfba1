package progress_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor/advisortest"
	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/progress"
)

func newFixture(t *testing.T, adv advisor.Advisor) *apitest.Fixture {
	f := apitest.New(t)
	progress.RegisterProgressRoutes(f.API, f.Store, adv, config.AIConfig{Timeout: time.Second}, f.Clock)
	return f
}

func insight(advisor.ProgressRequest) (*advisor.ProgressInsight, error) {
	return &advisor.ProgressInsight{
		Summary:         "Serve is coming along.",
		Improvements:    []string{"Serve +2"},
		Concerns:        []string{},
		Recommendations: []string{"Keep the toss drills"},
		NextWeekFocus:   []string{"Footwork"},
	}, nil
}

type seeded struct {
	batch   *models.Batch
	student *models.Student
}

func seed(t *testing.T, f *apitest.Fixture, scores ...models.SkillScores) seeded {
	t.Helper()
	batch, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner, CoachID: &f.Coach.ID})
	require.NoError(t, err)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Emma", Age: 10, BatchID: &batch.ID})
	require.NoError(t, err)
	for i, sc := range scores {
		note := "week " + apitest.ID(uint(i+1))
		_, err := f.Store.CreateSkillAssessment(f.Context, models.NewSkillAssessment{
			StudentID: st.ID, Serve: sc.Serve, Footwork: sc.Footwork, Stamina: sc.Stamina, MentalFocus: sc.MentalFocus, Notes: &note,
		})
		require.NoError(t, err)
		f.Clock.Advance(24 * time.Hour)
	}
	return seeded{batch: batch, student: st}
}

func (s seeded) attend(t *testing.T, f *apitest.Fixture, present ...bool) {
	t.Helper()
	for _, p := range present {
		se, err := f.Store.CreateSession(f.Context, models.NewSession{BatchID: s.batch.ID, CoachID: f.Coach.ID, Date: f.Clock.Now()})
		require.NoError(t, err)
		_, err = f.Store.MarkAttendance(f.Context, models.NewAttendance{SessionID: se.ID, StudentID: s.student.ID, Present: apitest.Ptr(p)})
		require.NoError(t, err)
		f.Clock.Advance(time.Hour)
	}
}

var (
	earlier = models.SkillScores{Serve: 4, Footwork: 5, Stamina: 6, MentalFocus: 5}
	later   = models.SkillScores{Serve: 6, Footwork: 5, Stamina: 6, MentalFocus: 7}
)

func TestGenerateSummary(t *testing.T) {
	stub := &advisortest.Stub{Progress: insight}
	f := newFixture(t, stub)
	s := seed(t, f, earlier, later)
	s.attend(t, f, true, true, true, false)

	w := f.Do(http.MethodPost, "/api/progress-summaries/generate", map[string]interface{}{"studentId": s.student.ID}, f.Coach)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := apitest.Decode[models.ProgressSummary](t, w)
	assert.Equal(t, s.student.ID, summary.StudentID)
	assert.Equal(t, "Serve is coming along.", summary.Summary)
	assert.Equal(t, models.StringSlice{"Serve +2"}, summary.Improvements)
	assert.Equal(t, models.StringSlice{}, summary.Concerns)
	assert.Equal(t, models.GeneratedByAI, summary.GeneratedBy)
	_, week := f.Clock.Now().UTC().ISOWeek()
	assert.Equal(t, week, summary.Week)

	require.Len(t, stub.ProgressRequests, 1)
	req := stub.ProgressRequests[0]
	assert.Equal(t, "Emma", req.StudentName)
	assert.Equal(t, earlier, req.Previous)
	assert.Equal(t, later, req.Current)
	assert.Equal(t, []string{"week 2", "week 1"}, req.SessionNotes)
	assert.InDelta(t, 75, req.AttendanceRate, 0.001)

	w = f.Do(http.MethodGet, "/api/students/"+apitest.ID(s.student.ID)+"/progress-summaries", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, apitest.Decode[[]models.ProgressSummary](t, w), 1)
}

func TestGenerateSummaryNeedsTwoAssessments(t *testing.T) {
	stub := &advisortest.Stub{Progress: insight}
	f := newFixture(t, stub)
	s := seed(t, f, earlier)

	w := f.Do(http.MethodPost, "/api/progress-summaries/generate", map[string]interface{}{"studentId": s.student.ID}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "at least 2 skill assessments")
	assert.Empty(t, stub.ProgressRequests)

	w = f.Do(http.MethodPost, "/api/progress-summaries/generate", map[string]interface{}{"studentId": 404}, f.Coach)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.Do(http.MethodPost, "/api/progress-summaries/generate", map[string]interface{}{}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSummaryAdvisorFailure(t *testing.T) {
	stub := &advisortest.Stub{Progress: func(advisor.ProgressRequest) (*advisor.ProgressInsight, error) {
		return nil, errors.New("upstream timeout")
	}}
	f := newFixture(t, advisor.WithFallback(stub, nil, nil))
	s := seed(t, f, earlier, later)

	w := f.Do(http.MethodPost, "/api/progress-summaries/generate", map[string]interface{}{"studentId": s.student.ID}, f.Coach)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	summaries, err := f.Store.ListProgressSummaries(f.Context, s.student.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestCreateSummaryByHand(t *testing.T) {
	f := newFixture(t, &advisortest.Stub{})
	s := seed(t, f)

	path := "/api/students/" + apitest.ID(s.student.ID) + "/progress-summaries"
	w := f.Do(http.MethodPost, path, map[string]interface{}{"week": 3, "summary": "Good effort", "improvements": []string{"Volley"}}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	summary := apitest.Decode[models.ProgressSummary](t, w)
	assert.Equal(t, progress.GeneratedByCoach, summary.GeneratedBy)
	assert.Equal(t, models.StringSlice{"Volley"}, summary.Improvements)
	assert.Equal(t, models.StringSlice{}, summary.Recommendations)

	f.Clock.Advance(time.Hour)
	w = f.Do(http.MethodPost, path, map[string]interface{}{"week": 4, "summary": "Better"}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.Do(http.MethodGet, path, nil, f.Coach)
	list := apitest.Decode[[]models.ProgressSummary](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Better", list[0].Summary, "newest first")

	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodPost, path, map[string]interface{}{"week": 4}, f.Coach).Code)
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodPost, "/api/students/99/progress-summaries", map[string]interface{}{"week": 1, "summary": "x"}, f.Coach).Code)
}

func TestAnalyzeDropoutRisk(t *testing.T) {
	stub := &advisortest.Stub{Risk: func(advisor.RiskRequest) (*advisor.RetentionPlan, error) {
		return &advisor.RetentionPlan{
			RiskFactors:    []string{"Missed sessions"},
			Interventions:  []string{"Call the parents"},
			Timeline:       "2 weeks",
			SuccessMetrics: []string{"Attends 3 sessions in a row"},
		}, nil
	}}
	f := newFixture(t, stub)
	s := seed(t, f, earlier, later, later, later, later, earlier)
	s.attend(t, f, true, false, false)

	w := f.Do(http.MethodPost, "/api/students/"+apitest.ID(s.student.ID)+"/analyze-dropout-risk", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plan := apitest.Decode[advisor.RetentionPlan](t, w)
	assert.Equal(t, "2 weeks", plan.Timeline)
	assert.Equal(t, []string{"Call the parents"}, plan.Interventions)

	require.Len(t, stub.RiskRequests, 1)
	req := stub.RiskRequests[0]
	assert.Equal(t, []int{6, 6, 6, 6, 5}, req.SkillProgression, "newest five, oldest first")
	assert.Equal(t, []string{"week 6", "week 5", "week 4"}, req.SessionNotes)
	assert.Equal(t, 2, req.MissedSessions)
	assert.InDelta(t, 33.3, req.AttendanceRate, 0.001)
}

func TestAnalyzeDropoutRiskWithoutHistory(t *testing.T) {
	stub := &advisortest.Stub{}
	f := newFixture(t, stub)
	s := seed(t, f)

	w := f.Do(http.MethodPost, "/api/students/"+apitest.ID(s.student.ID)+"/analyze-dropout-risk", nil, f.Coach)
	assert.Equal(t, http.StatusBadGateway, w.Code, "stub has no risk answer")
	require.Len(t, stub.RiskRequests, 1)
	assert.Empty(t, stub.RiskRequests[0].SkillProgression)
	assert.Equal(t, float64(100), stub.RiskRequests[0].AttendanceRate)

	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodPost, "/api/students/99/analyze-dropout-risk", nil, f.Coach).Code)
}
