package assessment_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/assessment"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func TestCreateAndListAssessments(t *testing.T) {
	f := apitest.New(t)
	assessment.RegisterAssessmentRoutes(f.API, f.Store)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)

	w := f.Do(http.MethodPost, "/api/skill-assessments", assessment.CreateAssessmentRequest{
		StudentID: st.ID, Serve: 4, Footwork: 5, Stamina: 5, MentalFocus: 4,
	}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := apitest.Decode[models.SkillAssessment](t, w)
	assert.Equal(t, 5, first.Overall)
	require.NotNil(t, first.AssessedBy)
	assert.Equal(t, f.Coach.ID, *first.AssessedBy)

	f.Clock.Advance(time.Hour)
	w = f.Do(http.MethodPost, "/api/students/"+apitest.ID(st.ID)+"/skill-assessments", map[string]int{
		"serve": 7, "footwork": 7, "stamina": 6, "mentalFocus": 6,
	}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.Do(http.MethodGet, "/api/students/"+apitest.ID(st.ID)+"/skill-assessments", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	list := apitest.Decode[[]models.SkillAssessment](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, 7, list[0].Serve)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestAssessmentValidation(t *testing.T) {
	f := apitest.New(t)
	assessment.RegisterAssessmentRoutes(f.API, f.Store)
	st, err := f.Store.CreateStudent(f.Context, models.NewStudent{Name: "Emma", Age: 10})
	require.NoError(t, err)

	w := f.Do(http.MethodPost, "/api/skill-assessments", assessment.CreateAssessmentRequest{
		StudentID: st.ID, Serve: 11, Footwork: 5, Stamina: 5, MentalFocus: 4,
	}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.Do(http.MethodPost, "/api/skill-assessments", assessment.CreateAssessmentRequest{
		Serve: 5, Footwork: 5, Stamina: 5, MentalFocus: 5,
	}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.Do(http.MethodPost, "/api/skill-assessments", assessment.CreateAssessmentRequest{
		StudentID: 99, Serve: 5, Footwork: 5, Stamina: 5, MentalFocus: 5,
	}, f.Coach)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
