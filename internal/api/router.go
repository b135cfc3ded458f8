package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/travelhub/booking-system/docs"
	"github.com/travelhub/booking-system/internal/api/handler"
	"github.com/travelhub/booking-system/internal/api/middleware"
	"github.com/travelhub/booking-system/internal/core/domain"
	"github.com/travelhub/booking-system/internal/core/service"
	mongodb "github.com/travelhub/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/travelhub/booking-system/internal/infrastructure/db/redis"
	"github.com/travelhub/booking-system/internal/infrastructure/http/handlers"
	"github.com/travelhub/booking-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("travel"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	destinationRepo := mongodb.NewDestinationRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	destinationService := service.NewDestinationService(destinationRepo, catalogCache, log)
	bookingService := service.NewBookingService(bookingRepo, destinationRepo, log)

	authHandler := handler.NewAuthHandler(userService)
	destinationHandler := handler.NewDestinationHandler(destinationService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authenticated := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Account routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/profile", authHandler.Profile, authenticated)
	e.GET("/auth/validate", authHandler.Validate, authenticated, adminOnly)

	// --- Destination catalog ---
	e.GET("/destinations", destinationHandler.List)
	e.POST("/destinations", destinationHandler.Create, authenticated, adminOnly)
	e.DELETE("/destinations/:id", destinationHandler.Delete, authenticated, adminOnly)

	// --- Bookings ---
	e.GET("/bookings", bookingHandler.List, authenticated, adminOnly)
	e.POST("/bookings", bookingHandler.Create, authenticated)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
