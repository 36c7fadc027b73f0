package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lenslease/marketplace-api/internal/api/handler"
	"github.com/lenslease/marketplace-api/internal/api/middleware"
	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/ports"
)

// Deps bundles everything the router needs. Mongo and Redis may be nil when
// the service runs on the in-memory store; the readiness probe reports them
// as skipped.
type Deps struct {
	Accounts  ports.AccountService
	Bookings  ports.BookingService
	Admin     ports.AdminService
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
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
	e.Use(echoprometheus.NewMiddleware("lenslease"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Accounts)
	catalogHandler := handler.NewCatalogHandler(deps.Accounts)
	profileHandler := handler.NewProfileHandler(deps.Accounts)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	auth := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Client routes ---
	client := e.Group("/v1", auth, middleware.RBAC(domain.RoleClient))
	client.GET("/photographers", catalogHandler.List)
	client.POST("/bookings", bookingHandler.Create)
	client.GET("/bookings", bookingHandler.History)

	// --- Photographer routes ---
	photographer := e.Group("/v1/photographer", auth, middleware.RBAC(domain.RolePhotographer))
	photographer.GET("/bookings", bookingHandler.Assigned)
	photographer.GET("/profile", profileHandler.Get)
	photographer.PUT("/profile", profileHandler.Update)
	e.POST("/v1/bookings/:id/:action", bookingHandler.Act, auth, middleware.RBAC(domain.RolePhotographer))

	// --- Admin routes ---
	admin := e.Group("/v1/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/photographers/:email/approve", adminHandler.Approve)
	admin.POST("/photographers/:email/reject", adminHandler.Reject)
	admin.DELETE("/accounts/:email", adminHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
