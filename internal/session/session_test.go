package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/session"
)

type seeded struct {
	*apitest.Fixture
	batch   *models.Batch
	student *models.Student
}

func newFixture(t *testing.T) *seeded {
	f := apitest.New(t)
	session.RegisterSessionRoutes(f.API, f.Store, time.UTC)
	b, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Emma", Age: 10, BatchID: &b.ID})
	require.NoError(t, err)
	return &seeded{Fixture: f, batch: b, student: st}
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/sessions", session.CreateSessionRequest{
		BatchID: f.batch.ID, Date: apitest.Start.Add(7 * time.Hour), Duration: apitest.Ptr(90), Court: apitest.Ptr("Court 1"),
	}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := apitest.Decode[models.Session](t, w)
	assert.Equal(t, models.SessionScheduled, created.Status)
	assert.Equal(t, f.Coach.ID, created.CoachID)

	path := "/api/sessions/" + apitest.ID(created.ID)
	w = f.Do(http.MethodGet, path, nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	details := apitest.Decode[models.SessionWithDetails](t, w)
	require.NotNil(t, details.Batch)
	require.NotNil(t, details.Coach)
	assert.Equal(t, "coach@academy.com", details.Coach.Username)
	assert.Empty(t, details.Attendance)

	w = f.Do(http.MethodPatch, path, map[string]string{"status": "active"}, f.Coach)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = f.Do(http.MethodPatch, path, map[string]string{"status": "scheduled"}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.Do(http.MethodPatch, path, `{"court":null}`, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	updated := apitest.Decode[models.Session](t, w)
	assert.Nil(t, updated.Court)
	assert.Equal(t, models.SessionActive, updated.Status)

	assert.Equal(t, http.StatusNoContent, f.Do(http.MethodDelete, path, nil, f.Coach).Code)
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodGet, path, nil, f.Coach).Code)
}

func TestListSessionsByDate(t *testing.T) {
	f := newFixture(t)
	for _, d := range []time.Time{apitest.Start, apitest.Start.Add(10 * time.Hour), apitest.Start.AddDate(0, 0, 1)} {
		_, err := f.Store.CreateSession(f.Context, models.NewSession{BatchID: f.batch.ID, Date: d})
		require.NoError(t, err)
	}

	w := f.Do(http.MethodGet, "/api/sessions?date=2025-03-10", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, apitest.Decode[[]models.SessionWithDetails](t, w), 2)

	w = f.Do(http.MethodGet, "/api/sessions?date=2025-03-11&batchId="+apitest.ID(f.batch.ID), nil, f.Coach)
	assert.Len(t, apitest.Decode[[]models.SessionWithDetails](t, w), 1)

	w = f.Do(http.MethodGet, "/api/sessions", nil, f.Coach)
	assert.Len(t, apitest.Decode[[]models.SessionWithDetails](t, w), 3)

	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodGet, "/api/sessions?date=10/03/2025", nil, f.Coach).Code)
}

func TestCreateSessionUnknownBatch(t *testing.T) {
	f := newFixture(t)
	w := f.Do(http.MethodPost, "/api/sessions", session.CreateSessionRequest{BatchID: 99}, f.Coach)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/sessions", map[string]interface{}{"batchId": f.batch.ID, "coachId": 999}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	se, err := f.Store.CreateSession(f.Context, models.NewSession{BatchID: f.batch.ID, Date: apitest.Start})
	require.NoError(t, err)
	path := "/api/sessions/" + apitest.ID(se.ID)
	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodPatch, path, map[string]uint{"batchId": 777}, f.Coach).Code)
	assert.Equal(t, http.StatusBadRequest, f.Do(http.MethodPatch, path, map[string]uint{"coachId": 999}, f.Coach).Code)

	w = f.Do(http.MethodGet, path, nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, f.batch.ID, apitest.Decode[models.SessionWithDetails](t, w).BatchID)

	w = f.Do(http.MethodGet, "/api/sessions", nil, f.Coach)
	assert.Len(t, apitest.Decode[[]models.SessionWithDetails](t, w), 1)
}

func TestAttendanceUpsertThroughRoutes(t *testing.T) {
	f := newFixture(t)
	se, err := f.Store.CreateSession(f.Context, models.NewSession{BatchID: f.batch.ID, Date: apitest.Start})
	require.NoError(t, err)

	w := f.Do(http.MethodPost, "/api/attendance", session.MarkAttendanceRequest{SessionID: se.ID, StudentID: f.student.ID}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := apitest.Decode[models.Attendance](t, w)
	assert.False(t, first.Present)

	path := "/api/attendance/" + apitest.ID(se.ID) + "/" + apitest.ID(f.student.ID)
	w = f.Do(http.MethodPatch, path, map[string]bool{"present": true}, f.Coach)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := apitest.Decode[models.Attendance](t, w)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Present)

	w = f.Do(http.MethodGet, "/api/sessions/"+apitest.ID(se.ID)+"/attendance", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	rows := apitest.Decode[[]models.AttendanceWithStudent](t, w)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Student)
	assert.Equal(t, "Emma", rows[0].Student.Name)
	assert.True(t, rows[0].Present)
}

func TestAttendanceRejectsUnknownRecords(t *testing.T) {
	f := newFixture(t)
	se, err := f.Store.CreateSession(f.Context, models.NewSession{BatchID: f.batch.ID, Date: apitest.Start})
	require.NoError(t, err)

	w := f.Do(http.MethodPost, "/api/attendance", session.MarkAttendanceRequest{SessionID: 99, StudentID: f.student.ID}, f.Coach)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.Do(http.MethodPatch, "/api/attendance/"+apitest.ID(se.ID)+"/99", map[string]bool{"present": true}, f.Coach)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = f.Do(http.MethodPatch, "/api/attendance/"+apitest.ID(se.ID)+"/"+apitest.ID(f.student.ID), `{}`, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodGet, "/api/sessions/99/attendance", nil, f.Coach).Code)
}
