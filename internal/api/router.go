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

	_ "github.com/khulna-traveller/travel-api/docs"
	"github.com/khulna-traveller/travel-api/internal/api/handler"
	"github.com/khulna-traveller/travel-api/internal/api/middleware"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

// Dependencies carries everything the router wires together. Mongo and Redis
// handles are only used by the readiness probe; all data access goes through
// the services.
type Dependencies struct {
	Log         zerolog.Logger
	Codec       ports.TokenCodec
	TokenTTL    time.Duration
	Users       ports.UserService
	Banners     ports.ContentService
	Plans       ports.ContentService
	Team        ports.ContentService
	Gallery     ports.ContentService
	Limiter     middleware.Limiter
	CORSOrigins []string
	Mongo       *mongo.Database
	Redis       *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("travel_api"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowCredentials: true,
	}))

	session := middleware.Session(deps.Codec)
	admin := middleware.AdminOnly(deps.Users)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Codec, deps.TokenTTL)
	e.POST("/auth/login", authHandler.Login, middleware.Throttle(deps.Limiter, deps.Log))
	e.POST("/auth/logout", authHandler.Logout)

	// --- User routes ---
	userHandler := handler.NewUserHandler(deps.Users)
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, session, admin)
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.UpdateProfile, session)
	e.DELETE("/users/:id", userHandler.Delete, session, admin)
	e.PATCH("/users/:id/promote", userHandler.Promote, session, admin)
	e.GET("/users/email/:email", userHandler.GetByEmail)
	e.GET("/users/admin/:email", userHandler.AdminStatus, session)

	// --- Content collections: same contract, four collections ---
	registerContent(e, "/banners", handler.NewContentHandler("banner", deps.Banners), session, admin)
	registerContent(e, "/plans", handler.NewContentHandler("latestPlan", deps.Plans), session, admin)
	registerContent(e, "/team", handler.NewContentHandler("them", deps.Team), session, admin)
	registerContent(e, "/gallery", handler.NewContentHandler("gallery", deps.Gallery), session, admin)

	// --- Operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// registerContent mounts the uniform lifecycle for one collection: public
// reads, admin-gated writes.
func registerContent(e *echo.Echo, prefix string, h *handler.ContentHandler, session, admin echo.MiddlewareFunc) {
	e.POST(prefix, h.Create, session, admin)
	e.GET(prefix, h.List)
	e.GET(prefix+"/:id", h.Get)
	e.PUT(prefix+"/:id", h.Update, session, admin)
	e.DELETE(prefix+"/:id", h.Delete, session, admin)
}
