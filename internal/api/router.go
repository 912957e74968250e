package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/planisoins/planning-api/internal/api/handler"
	"github.com/planisoins/planning-api/internal/api/middleware"
	"github.com/planisoins/planning-api/internal/core/domain"
	"github.com/planisoins/planning-api/internal/core/service"
	"github.com/planisoins/planning-api/internal/infrastructure/config"
	"github.com/planisoins/planning-api/internal/infrastructure/db/postgres"
	"github.com/planisoins/planning-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("planning"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	planningRepo := postgres.NewPlanningRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	planningService := service.NewPlanningService(planningRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)

	throttle := redis.NewLoginLimiter(rdb, 0, 0)

	authHandler := handler.NewAuthHandler(authService, throttle, log)
	planningHandler := handler.NewPlanningHandler(planningService)
	exportHandler := handler.NewExportHandler(planningService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/planning/:year/:month", planningHandler.GetMonth)
	v1.PUT("/planning/:user_id/:date", planningHandler.SetStatus)
	v1.PUT("/planning/:user_id/:date/note", planningHandler.SetNote)
	v1.GET("/planning/:year/:month/export", exportHandler.Export, adminOnly)

	v1.POST("/profile/password", authHandler.ChangePassword)

	users := v1.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
