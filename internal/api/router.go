package api

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/premierleague/fixtures-api/internal/api/handler"
	"github.com/premierleague/fixtures-api/internal/api/middleware"
	"github.com/premierleague/fixtures-api/internal/core/domain"
	"github.com/premierleague/fixtures-api/internal/core/service"
	"github.com/premierleague/fixtures-api/internal/infrastructure/config"
	mongodb "github.com/premierleague/fixtures-api/internal/infrastructure/db/mongo"
	redisdb "github.com/premierleague/fixtures-api/internal/infrastructure/db/redis"
	"github.com/premierleague/fixtures-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, clock clockwork.Clock) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(echoprometheus.NewMiddleware("fixtures"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	fixtureRepo := mongodb.NewFixtureRepository(db)
	listCache := redisdb.NewFixtureListCache(rdb)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	teamService := service.NewTeamService(teamRepo, log)
	fixtureService := service.NewFixtureService(fixtureRepo, teamRepo, listCache, clock, log)

	authHandler := handler.NewAuthHandler(authService)
	teamHandler := handler.NewTeamHandler(teamService)
	fixtureHandler := handler.NewFixtureHandler(fixtureService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- API routes ---
	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/users", authHandler.ListUsers, authRequired, adminOnly)

	teams := api.Group("/teams", authRequired)
	teams.POST("", teamHandler.Create, adminOnly)
	teams.GET("", teamHandler.List)
	teams.GET("/:id", teamHandler.Get)
	teams.PUT("/:id", teamHandler.Update, adminOnly)
	teams.DELETE("/:id", teamHandler.Delete, adminOnly)

	fixtures := api.Group("/fixtures", authRequired)
	fixtures.POST("", fixtureHandler.Create, adminOnly)
	fixtures.GET("/one/:id", fixtureHandler.Get)
	fixtures.GET("/status", fixtureHandler.ListByStatus)
	fixtures.GET("/all", fixtureHandler.ListAll)
	fixtures.GET("/search", fixtureHandler.Search)
	fixtures.PUT("/:id", fixtureHandler.Update, adminOnly)
	fixtures.PUT("/score/:id", fixtureHandler.UpdateScore, adminOnly)
	fixtures.DELETE("/:id", fixtureHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Mock Premier League!")
	})

	return e
}
