// Package apitest builds an in-memory API for handler tests.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/middleware"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/principal"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/memory"
	"github.com/DhavalSuthar-24/acecourt/pkg/token"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
	"github.com/DhavalSuthar-24/acecourt/pkg/validator"
)

const (
	Secret   = "apitest-secret"
	Password = "tennis123"
)

// Start is the initial time of the fixture clock.
var Start = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

type Fixture struct {
	t       *testing.T
	Store   *storage.Service
	Clock   *testclock.Clock
	Cache   cache.Cache
	Router  *gin.Engine
	Public  *gin.RouterGroup
	API     *gin.RouterGroup
	AuthMW  gin.HandlerFunc
	Coach   *models.User
	Admin   *models.User
	tokens  map[uint]string
	Context context.Context
}

// New returns a fixture with one coach and one admin. API is the /api group
// behind the auth middleware; Public is /api without it.
func New(t *testing.T) *Fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.RegisterTags())
	utils.PasswordCost = 4

	clk := testclock.NewClock(Start)
	store := storage.NewService(memory.New(), storage.ServiceConfig{Clock: clk})
	c := cache.NewMemory(clk)

	hash, err := utils.HashPassword(Password)
	require.NoError(t, err)
	ctx := context.Background()
	coach, err := store.CreateUser(ctx, models.NewUser{Username: "coach@academy.com", Password: hash, AcademyName: "Elite Tennis Academy"})
	require.NoError(t, err)
	admin, err := store.CreateUser(ctx, models.NewUser{Username: "admin@academy.com", Password: hash, Role: models.RoleAdmin, AcademyName: "Elite Tennis Academy"})
	require.NoError(t, err)

	r := gin.New()
	authMW := middleware.AuthMiddleware(Secret, store, c)
	public := r.Group("/api")
	return &Fixture{
		t:       t,
		Store:   store,
		Clock:   clk,
		Cache:   c,
		Router:  r,
		Public:  public,
		API:     r.Group("/api", authMW),
		AuthMW:  authMW,
		Coach:   coach,
		Admin:   admin,
		tokens:  map[uint]string{},
		Context: principal.WithPrincipal(ctx, principal.Principal{UserID: coach.ID, Role: coach.Role}),
	}
}

// Token returns a bearer token for u, issuing it on first use.
func (f *Fixture) Token(u *models.User) string {
	if tok, ok := f.tokens[u.ID]; ok {
		return tok
	}
	issued, err := token.GenerateJWT(u.ID, string(u.Role), Secret, 60)
	require.NoError(f.t, err)
	f.tokens[u.ID] = issued.Token
	return issued.Token
}

// Do sends a JSON request as user u. A nil user sends no credentials.
func (f *Fixture) Do(method, path string, body interface{}, u *models.User) *httptest.ResponseRecorder {
	f.t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(f.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if u != nil {
		req.Header.Set("Authorization", "Bearer "+f.Token(u))
	}
	w := httptest.NewRecorder()
	f.Router.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body, failing the test on error.
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func Ptr[T any](v T) *T { return &v }

// ID formats a record id for a request path.
func ID(id uint) string { return strconv.FormatUint(uint64(id), 10) }
