package dashboard_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/dashboard"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func TestDashboardStats(t *testing.T) {
	f := apitest.New(t)
	dashboard.RegisterDashboardRoutes(f.API, f.Store)

	w := f.Do(http.MethodGet, "/api/dashboard/stats", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.DashboardStats{AverageImprovement: "+0.0"}, apitest.Decode[models.DashboardStats](t, w))

	batch, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner})
	require.NoError(t, err)
	emma, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Emma", Age: 10, BatchID: &batch.ID})
	require.NoError(t, err)
	_, err = f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Liam", Age: 9, Status: models.StudentAtRisk})
	require.NoError(t, err)
	_, err = f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Mia", Age: 11, Status: models.StudentInactive})
	require.NoError(t, err)

	for _, overall := range []int{4, 6} {
		_, err := f.Store.CreateSkillAssessment(f.Context, models.NewSkillAssessment{StudentID: emma.ID, Serve: overall, Footwork: overall, Stamina: overall, MentalFocus: overall})
		require.NoError(t, err)
		f.Clock.Advance(time.Minute)
	}
	_, err = f.Store.CreateSession(f.Context, models.NewSession{BatchID: batch.ID, CoachID: f.Coach.ID, Date: apitest.Start.Add(3 * time.Hour)})
	require.NoError(t, err)
	_, err = f.Store.CreateSession(f.Context, models.NewSession{BatchID: batch.ID, CoachID: f.Coach.ID, Date: apitest.Start.Add(48 * time.Hour)})
	require.NoError(t, err)

	w = f.Do(http.MethodGet, "/api/dashboard/stats", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	stats := apitest.Decode[models.DashboardStats](t, w)
	assert.Equal(t, 1, stats.SessionsToday)
	assert.Equal(t, 1, stats.ActiveStudents)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.AtRiskStudents)
	assert.Equal(t, "+2.0", stats.AverageImprovement)

	assert.Equal(t, http.StatusUnauthorized, f.Do(http.MethodGet, "/api/dashboard/stats", nil, nil).Code)
}
