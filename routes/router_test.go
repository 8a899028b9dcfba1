package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/auth"
	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/metrics"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/seed"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/storage/memory"
	"github.com/DhavalSuthar-24/acecourt/pkg/utils"
	"github.com/DhavalSuthar-24/acecourt/pkg/validator"
	"github.com/DhavalSuthar-24/acecourt/routes"
)

const frontend = "http://localhost:5173"

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.RegisterTags())
	utils.PasswordCost = 4

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := testclock.NewClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	store := storage.NewService(memory.New(), storage.ServiceConfig{Clock: clk, Logger: log})
	_, err := seed.Load(context.Background(), store, clk, log)
	require.NoError(t, err)

	collector := metrics.NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(collector))

	cfg := &config.Config{
		App: config.AppConfig{Env: "test", FrontendURL: frontend},
		JWT: config.JWTConfig{Secret: "router-test", ExpiryMinutes: 60},
		AI:  config.AIConfig{Timeout: time.Second, BatchConcurrency: 2},
	}
	c := cache.NewMemory(clk)
	return routes.SetupRoutes(routes.Dependencies{
		Config:   cfg,
		Store:    store,
		Cache:    c,
		Advisor:  advisor.WithFallback(advisor.NewCachedDrills(advisor.Offline{}, c, time.Hour, 0, log), collector, log),
		Metrics:  collector,
		Gatherer: reg,
		Clock:    clk,
		Location: time.UTC,
		Logger:   log,
	})
}

func serve(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := serve(r, http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestHealthAndMetrics(t *testing.T) {
	r := newRouter(t)

	w := serve(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `acecourt_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/students", nil)
	req.Header.Set("Origin", frontend)
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, frontend, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSeededAcademyEndToEnd(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/students", "", nil).Code)
	tok := login(t, r, seed.CoachUsername, seed.CoachPassword)

	w := serve(r, http.MethodGet, "/api/students", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var students []models.StudentWithBatch
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	assert.Len(t, students, 6)

	w = serve(r, http.MethodGet, "/api/dashboard/stats", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.AtRiskStudents)

	w = serve(r, http.MethodPost, "/api/drill-recommendations", tok, map[string]string{"query": "footwork"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = serve(r, http.MethodPost, "/api/students/1/analyze-dropout-risk", tok, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = serve(r, http.MethodGet, "/metrics", "", nil)
	assert.Contains(t, w.Body.String(), `acecourt_ai_calls_total{operation="recommend_drills",outcome="fallback"} 1`)
	assert.Contains(t, w.Body.String(), `acecourt_ai_calls_total{operation="analyze_dropout_risk",outcome="error"} 1`)

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/api/users", tok, nil).Code)
	adminTok := login(t, r, seed.AdminUsername, seed.AdminPassword)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/users", adminTok, nil).Code)

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/auth/logout", tok, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/students", tok, nil).Code)
}
