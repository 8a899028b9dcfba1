package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/api/students/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(Handler(reg)))

	for _, path := range []string{"/api/students/1", "/api/students/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/students/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requests.WithLabelValues("GET", "unmatched", "404")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "acecourt_http_requests_total"))
}

func TestObserveAI(t *testing.T) {
	c := NewCollector()
	c.ObserveAI("recommend_drills", OutcomeFallback)
	c.ObserveAI("recommend_drills", OutcomeFallback)
	c.ObserveAI("generate_summary", OutcomeOK)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.aiCalls.WithLabelValues("recommend_drills", OutcomeFallback)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.aiCalls.WithLabelValues("generate_summary", OutcomeOK)))
}
