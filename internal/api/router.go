package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/KennyASG/ticketapp/internal/api/handler"
	"github.com/KennyASG/ticketapp/internal/api/middleware"
	"github.com/KennyASG/ticketapp/internal/core/auth"
	"github.com/KennyASG/ticketapp/internal/core/domain"
	"github.com/KennyASG/ticketapp/internal/core/service"
	"github.com/KennyASG/ticketapp/internal/infrastructure/db/postgres"
	"github.com/KennyASG/ticketapp/internal/pkg/config"
)

// NewAuthRouter builds the Echo instance for the auth service with all
// routes registered.
func NewAuthRouter(db *gorm.DB, cfg *config.AuthConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := newEcho("ticketapp_auth", log)

	// --- Dependencies ---
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewPasswordHasher(0)

	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/users", authHandler.ListUsers,
		middleware.Auth(tokens), middleware.RBAC(domain.RoleAdmin))

	registerProbes(e, db)

	return e, nil
}

// NewConcertRouter builds the Echo instance for the concert service with all
// routes registered.
func NewConcertRouter(db *gorm.DB, log zerolog.Logger) *echo.Echo {
	e := newEcho("ticketapp_concert", log)

	// --- Dependencies ---
	concertRepo := postgres.NewConcertRepository(db)
	concertService := service.NewConcertService(concertRepo, log)
	concertHandler := handler.NewConcertHandler(concertService)

	// --- Concert routes ---
	g := e.Group("/concert")
	g.GET("", concertHandler.List)
	g.GET("/:id", concertHandler.Get)
	g.POST("", concertHandler.Create)
	g.PUT("/:id", concertHandler.Update)
	g.DELETE("/:id", concertHandler.Delete)

	registerProbes(e, db)

	return e
}

func newEcho(subsystem string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware(subsystem))

	return e
}

// registerProbes wires the health and metrics endpoints shared by both
// services.
func registerProbes(e *echo.Echo, db *gorm.DB) {
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())
}
