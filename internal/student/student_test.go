package student_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/student"
)

func newFixture(t *testing.T) *apitest.Fixture {
	f := apitest.New(t)
	student.RegisterStudentRoutes(f.API, f.Store)
	return f
}

func TestStudentLifecycle(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/students", map[string]interface{}{"name": "Emma", "age": 10, "batchId": nil}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := apitest.Decode[models.Student](t, w)
	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, models.StudentActive, created.Status)
	assert.False(t, created.JoinDate.IsZero())

	w = f.Do(http.MethodPatch, "/api/students/1", map[string]string{"status": "at_risk"}, f.Coach)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := apitest.Decode[models.Student](t, w)
	assert.Equal(t, models.StudentAtRisk, updated.Status)
	assert.Equal(t, "Emma", updated.Name)

	w = f.Do(http.MethodGet, "/api/students/at-risk", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	atRisk := apitest.Decode[[]models.StudentWithBatch](t, w)
	require.Len(t, atRisk, 1)
	assert.EqualValues(t, 1, atRisk[0].ID)

	assert.Equal(t, http.StatusNoContent, f.Do(http.MethodDelete, "/api/students/1", nil, f.Coach).Code)

	w = f.Do(http.MethodGet, "/api/students/at-risk", nil, f.Coach)
	assert.Empty(t, apitest.Decode[[]models.StudentWithBatch](t, w))
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodGet, "/api/students/1", nil, f.Coach).Code)
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodDelete, "/api/students/1", nil, f.Coach).Code)
}

func TestStudentDetailJoinsBatchAndAssessment(t *testing.T) {
	f := newFixture(t)
	batch, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Liam", Age: 9, BatchID: &batch.ID})
	require.NoError(t, err)
	_, err = f.Store.CreateSkillAssessment(f.Context, models.NewSkillAssessment{StudentID: st.ID, Serve: 6, Footwork: 7, Stamina: 5, MentalFocus: 6})
	require.NoError(t, err)

	w := f.Do(http.MethodGet, "/api/students/"+apitest.ID(st.ID), nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	got := apitest.Decode[models.StudentWithBatch](t, w)
	require.NotNil(t, got.Batch)
	assert.Equal(t, "Juniors", got.Batch.Name)
	require.NotNil(t, got.LatestSkillAssessment)
	assert.Equal(t, 6, got.LatestSkillAssessment.Overall)

	w = f.Do(http.MethodGet, "/api/students?batchId="+apitest.ID(batch.ID), nil, f.Coach)
	assert.Len(t, apitest.Decode[[]models.StudentWithBatch](t, w), 1)
	w = f.Do(http.MethodGet, "/api/students?batchId=999", nil, f.Coach)
	assert.Empty(t, apitest.Decode[[]models.StudentWithBatch](t, w))
}

func TestUpdateStudentClearsNullableFields(t *testing.T) {
	f := newFixture(t)
	batch, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Liam", Age: 9, BatchID: &batch.ID, Phone: apitest.Ptr("555-0101")})
	require.NoError(t, err)

	w := f.Do(http.MethodPatch, "/api/students/"+apitest.ID(st.ID), `{"batchId":null}`, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	got := apitest.Decode[models.Student](t, w)
	assert.Nil(t, got.BatchID)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "555-0101", *got.Phone)
}

func TestStudentValidation(t *testing.T) {
	f := newFixture(t)

	for name, body := range map[string]string{
		"missing name":   `{"age":10}`,
		"missing age":    `{"name":"NoAge"}`,
		"negative age":   `{"name":"Emma","age":-1}`,
		"unknown status": `{"name":"Emma","age":10,"status":"retired"}`,
		"bad email":      `{"name":"Emma","age":10,"email":"not-an-email"}`,
		"unknown batch":  `{"name":"Emma","age":10,"batchId":999}`,
		"not json":       `{`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodPost, "/api/students", body, f.Coach).Code)
		})
	}

	w := f.Do(http.MethodGet, "/api/students", nil, f.Coach)
	assert.Empty(t, apitest.Decode[[]models.StudentWithBatch](t, w))

	w = f.Do(http.MethodPost, "/api/students", `{"name":"Toddler","age":0}`, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 0, apitest.Decode[models.Student](t, w).Age)

	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodPatch, "/api/students/1", `{"batchId":999}`, f.Coach).Code)
	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodGet, "/api/students/abc", nil, f.Coach).Code)
	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodGet, "/api/students?status=gone", nil, f.Coach).Code)
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodPatch, "/api/students/42", `{"name":"X"}`, f.Coach).Code)
}

func TestAttendanceSummaryRoute(t *testing.T) {
	f := newFixture(t)
	batch, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Liam", Age: 9, BatchID: &batch.ID})
	require.NoError(t, err)
	se, err := f.Store.CreateSession(f.Context, models.NewSession{BatchID: batch.ID, Date: apitest.Start})
	require.NoError(t, err)
	_, err = f.Store.MarkAttendance(f.Context, models.NewAttendance{SessionID: se.ID, StudentID: st.ID, Present: apitest.Ptr(true)})
	require.NoError(t, err)

	w := f.Do(http.MethodGet, "/api/students/"+apitest.ID(st.ID)+"/attendance", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	summary := apitest.Decode[models.AttendanceSummary](t, w)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, float64(100), summary.Rate)

	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodGet, "/api/students/99/attendance", nil, f.Coach).Code)
}

func TestStudentRoutesRequireAuth(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusUnauthorized, f.Do(http.MethodGet, "/api/students", nil, nil).Code)
}
