package batch_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/batch"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func newFixture(t *testing.T) *apitest.Fixture {
	f := apitest.New(t)
	batch.RegisterBatchRoutes(f.API, f.Store)
	return f
}

func TestCoachSeesOwnBatches(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/batches", batch.CreateBatchRequest{Name: "Juniors", AgeGroup: "8-10", Level: models.LevelBeginner}, f.Coach)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	mine := apitest.Decode[models.Batch](t, w)
	require.NotNil(t, mine.CoachID)
	assert.Equal(t, f.Coach.ID, *mine.CoachID)

	w = f.Do(http.MethodPost, "/api/batches", batch.CreateBatchRequest{Name: "Seniors", AgeGroup: "16+", Level: models.LevelAdvanced}, f.Admin)
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.Do(http.MethodGet, "/api/batches", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	list := apitest.Decode[[]models.Batch](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Juniors", list[0].Name)

	w = f.Do(http.MethodGet, "/api/batches", nil, f.Admin)
	assert.Len(t, apitest.Decode[[]models.Batch](t, w), 2)
}

func TestBatchUpdateAndDeleteAuthorization(t *testing.T) {
	f := newFixture(t)
	adminBatch, err := f.Store.CreateBatch(f.Context, models.NewBatch{Name: "Seniors", AgeGroup: "16+", Level: models.LevelAdvanced, CoachID: &f.Admin.ID})
	require.NoError(t, err)

	path := "/api/batches/" + apitest.ID(adminBatch.ID)
	assert.Equal(t, http.StatusForbidden, f.Do(http.MethodPatch, path, map[string]string{"name": "Mine"}, f.Coach).Code)
	assert.Equal(t, http.StatusForbidden, f.Do(http.MethodDelete, path, nil, f.Coach).Code)

	w := f.Do(http.MethodPatch, path, map[string]interface{}{"level": "intermediate", "coachId": f.Coach.ID}, f.Admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := apitest.Decode[models.Batch](t, w)
	assert.Equal(t, models.LevelIntermediate, updated.Level)
	assert.Equal(t, "Seniors", updated.Name)

	assert.Equal(t, http.StatusNoContent, f.Do(http.MethodDelete, path, nil, f.Coach).Code)
	assert.Equal(t, http.StatusNotFound, f.Do(http.MethodDelete, path, nil, f.Coach).Code)
}

func TestBatchValidation(t *testing.T) {
	f := newFixture(t)
	w := f.Do(http.MethodPost, "/api/batches", map[string]string{"name": "X", "ageGroup": "8-10", "level": "pro"}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.Do(http.MethodPost, "/api/batches", map[string]interface{}{"name": "X", "ageGroup": "8-10", "level": "beginner", "coachId": 99}, f.Coach)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
