package user_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/auth"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/user"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
)

func newFixture(t *testing.T) *apitest.Fixture {
	f := apitest.New(t)
	user.RegisterUserRoutes(f.API, f.Store)
	return f
}

func TestAdminManagesAccounts(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/users", user.CreateUserRequest{
		Username: "coach2@academy.com", Password: "password123", AcademyName: "Elite",
	}, f.Admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := apitest.Decode[auth.UserResponse](t, w)
	assert.Equal(t, models.RoleCoach, created.Role)

	stored, err := f.Store.GetUser(f.Context, created.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(stored.Password, "password123"))

	w = f.Do(http.MethodGet, "/api/users", nil, f.Admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, apitest.Decode[[]auth.UserResponse](t, w), 3)

	w = f.Do(http.MethodPatch, "/api/users/"+apitest.ID(created.ID), map[string]string{"role": "admin"}, f.Admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleAdmin, apitest.Decode[auth.UserResponse](t, w).Role)

	w = f.Do(http.MethodDelete, "/api/users/"+apitest.ID(created.ID), nil, f.Admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = f.Do(http.MethodDelete, "/api/users/"+apitest.ID(created.ID), nil, f.Admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserRoutesRejectCoaches(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusForbidden, f.Do(http.MethodGet, "/api/users", nil, f.Coach).Code)
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/users", map[string]string{
		"username": "x@academy.com", "password": "password123", "academyName": "Elite", "role": "owner",
	}, f.Admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.Do(http.MethodPost, "/api/users", user.CreateUserRequest{
		Username: "coach@academy.com", Password: "password123", AcademyName: "Elite",
	}, f.Admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	f := newFixture(t)
	w := f.Do(http.MethodDelete, "/api/users/"+apitest.ID(f.Admin.ID), nil, f.Admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
