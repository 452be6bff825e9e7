package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gowheels/account-service/docs"
	"github.com/gowheels/account-service/internal/api/handler"
	"github.com/gowheels/account-service/internal/api/middleware"
	"github.com/gowheels/account-service/internal/core/domain"
	"github.com/gowheels/account-service/internal/core/ports"
)

// Deps bundles the wired services the router needs.
type Deps struct {
	AuthService ports.AuthService
	UserService ports.UserService
	Tokens      ports.TokenService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Guards ---
	requireAccess := middleware.Auth(deps.Tokens, ports.TokenKindAccess)
	requireRefresh := middleware.Auth(deps.Tokens, ports.TokenKindRefresh)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/refresh", authHandler.Refresh, requireRefresh)

	// --- Directory routes ---
	userHandler := handler.NewUserHandler(deps.UserService)
	e.GET("/api/users", userHandler.List, requireAccess, requireAdmin)
	e.POST("/api/users", userHandler.Create, requireAccess)
	e.GET("/api/user", userHandler.Get, requireAccess)
	e.GET("/api/user/:id", userHandler.Get, requireAccess)
	e.PATCH("/api/user", userHandler.Update, requireAccess)
	e.PATCH("/api/user/:id", userHandler.Update, requireAccess)
	e.DELETE("/api/user/:id", userHandler.Delete, requireAccess, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
