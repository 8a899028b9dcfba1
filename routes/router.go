package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/acecourt/config"
	"github.com/DhavalSuthar-24/acecourt/internal/advisor"
	"github.com/DhavalSuthar-24/acecourt/internal/assessment"
	"github.com/DhavalSuthar-24/acecourt/internal/auth"
	"github.com/DhavalSuthar-24/acecourt/internal/batch"
	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/dashboard"
	"github.com/DhavalSuthar-24/acecourt/internal/drill"
	"github.com/DhavalSuthar-24/acecourt/internal/metrics"
	"github.com/DhavalSuthar-24/acecourt/internal/middleware"
	"github.com/DhavalSuthar-24/acecourt/internal/plan"
	"github.com/DhavalSuthar-24/acecourt/internal/progress"
	"github.com/DhavalSuthar-24/acecourt/internal/session"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/internal/student"
	"github.com/DhavalSuthar-24/acecourt/internal/user"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Config   *config.Config
	Store    storage.Storage
	Cache    cache.Cache
	Advisor  advisor.Advisor
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Clock    clock.Clock
	Location *time.Location
	Logger   *slog.Logger
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(deps.Metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	authMiddleware := middleware.AuthMiddleware(cfg.JWT.Secret, deps.Store, deps.Cache)
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, deps.Store, cfg, deps.Cache, authMiddleware)

	protected := api.Group("", authMiddleware)
	user.RegisterUserRoutes(protected, deps.Store)
	student.RegisterStudentRoutes(protected, deps.Store)
	batch.RegisterBatchRoutes(protected, deps.Store)
	assessment.RegisterAssessmentRoutes(protected, deps.Store)
	session.RegisterSessionRoutes(protected, deps.Store, deps.Location)
	plan.RegisterPlanRoutes(protected, deps.Store, deps.Advisor, cfg.AI)
	progress.RegisterProgressRoutes(protected, deps.Store, deps.Advisor, cfg.AI, deps.Clock)
	drill.RegisterDrillRoutes(protected, deps.Store, deps.Advisor, cfg.AI)
	dashboard.RegisterDashboardRoutes(protected, deps.Store)

	return r
}
