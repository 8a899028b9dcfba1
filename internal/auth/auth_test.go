package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/apitest"
	"github.com/DhavalSuthar-24/acecourt/internal/auth"
	"github.com/DhavalSuthar-24/acecourt/internal/middleware"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

func newFixture(t *testing.T) *apitest.Fixture {
	f := apitest.New(t)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: apitest.Secret, ExpiryMinutes: 60}}
	auth.RegisterAuthRoutes(f.Public, f.Store, cfg, f.Cache, f.AuthMW)
	return f
}

func TestLoginAndCurrentUser(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/auth/login", auth.LoginRequest{Username: "coach@academy.com", Password: apitest.Password}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := apitest.Decode[auth.AuthResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, f.Coach.ID, resp.User.ID)
	assert.Equal(t, models.RoleCoach, resp.User.Role)
	assert.NotContains(t, w.Body.String(), "password")

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, resp.Token, cookie.Value)

	w = f.Do(http.MethodGet, "/api/auth/user", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)
	user := apitest.Decode[auth.UserResponse](t, w)
	assert.Equal(t, "coach@academy.com", user.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/auth/login", auth.LoginRequest{Username: "coach@academy.com", Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.Do(http.MethodPost, "/api/auth/login", auth.LoginRequest{Username: "nobody@academy.com", Password: apitest.Password}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.Do(http.MethodPost, "/api/auth/login", `{"username":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)

	w := f.Do(http.MethodPost, "/api/auth/logout", nil, f.Coach)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.Do(http.MethodGet, "/api/auth/user", nil, f.Coach)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Other sessions keep working.
	w = f.Do(http.MethodGet, "/api/auth/user", nil, f.Admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUserRequiresAuth(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusUnauthorized, f.Do(http.MethodGet, "/api/auth/user", nil, nil).Code)
}
