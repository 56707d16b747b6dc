package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portalops/user-admin-api/internal/api/handler"
	"github.com/portalops/user-admin-api/internal/api/middleware"
	"github.com/portalops/user-admin-api/internal/core/ports"
	"github.com/portalops/user-admin-api/internal/core/service"
	mongodb "github.com/portalops/user-admin-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the in-memory session backend is in use.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore, staticDir string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, sessions, log)
	adminService := service.NewAdminService(userRepo, sessions, log)

	authHandler := handler.NewAuthHandler(authService, log)
	adminHandler := handler.NewAdminHandler(adminService)
	pageHandler := handler.NewPageHandler(sessions, staticDir)

	authenticate := middleware.Authenticate(sessions)
	requireAdmin := middleware.RequireAdmin()

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/api/user", authHandler.CurrentUser, authenticate)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authenticate, requireAdmin)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Pages ---
	e.GET("/", pageHandler.Index)
	e.GET("/dashboard", pageHandler.Dashboard)
	e.GET("/admin", pageHandler.Admin)
	e.Static("/static", staticDir+"/static")

	// --- Health probes and telemetry (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
