package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bibliotech/catalog-api/docs"
	"github.com/bibliotech/catalog-api/internal/api/handler"
	"github.com/bibliotech/catalog-api/internal/api/middleware"
	"github.com/bibliotech/catalog-api/internal/core/ports"
	"github.com/bibliotech/catalog-api/internal/core/service"
	"github.com/bibliotech/catalog-api/internal/infrastructure/config"
	mongodb "github.com/bibliotech/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bibliotech/catalog-api/internal/infrastructure/db/redis"
	"github.com/bibliotech/catalog-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client, tokens ports.TokenService) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Development())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	counter := redisdb.NewRequestCounter(rdb)
	e.Use(middleware.RateLimit(counter, cfg.Rate.Max, cfg.Rate.Window, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)

	authService := service.NewAuthService(userRepo, tokens, log)
	bookService := service.NewBookService(bookRepo, log)

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		return nil, err
	}

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService, images)
	requireAuth := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, requireAuth)

	// --- Book routes (listing and lookup are public) ---
	e.GET("/books", bookHandler.List)
	e.GET("/books/:id", bookHandler.Get)
	e.POST("/books", bookHandler.Create, requireAuth)
	e.PUT("/books/:id", bookHandler.Update, requireAuth)
	e.DELETE("/books/:id", bookHandler.Delete, requireAuth)

	// --- Uploaded cover images ---
	e.Static("/uploads", cfg.Upload.Dir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API documentation (development only) ---
	if cfg.Development() {
		e.GET("/docs/*", echoSwagger.WrapHandler)
	}

	return e, nil
}
