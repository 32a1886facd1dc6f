package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/door2door/taskmarket-api/internal/api/handler"
	"github.com/door2door/taskmarket-api/internal/api/middleware"
	"github.com/door2door/taskmarket-api/internal/core/service"
	mongodb "github.com/door2door/taskmarket-api/internal/infrastructure/db/mongo"
	redisdb "github.com/door2door/taskmarket-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskmarket"))

	// --- Dependencies ---
	taskRepo := mongodb.NewTaskRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	taskCache := redisdb.NewTaskCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	taskService := service.NewTaskService(taskRepo, userRepo, taskCache, log)
	profileService := service.NewProfileService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	profileHandler := handler.NewProfileHandler(profileService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks", taskHandler.List)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.POST("/tasks/:id/assign", taskHandler.Assign)
	// The original assignment link was a plain anchor, so GET stays routable.
	v1.GET("/tasks/:id/assign", taskHandler.Assign)
	v1.GET("/profile", profileHandler.Get)
	v1.PUT("/profile", profileHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
