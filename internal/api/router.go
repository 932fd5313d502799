package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/photoshare/photoshare-api/internal/api/handler"
	"github.com/photoshare/photoshare-api/internal/api/middleware"
	"github.com/photoshare/photoshare-api/internal/core/service"
	"github.com/photoshare/photoshare-api/internal/infrastructure/config"
	mongodb "github.com/photoshare/photoshare-api/internal/infrastructure/db/mongo"
	redisdb "github.com/photoshare/photoshare-api/internal/infrastructure/db/redis"
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
	e.Use(echoprometheus.NewMiddleware("photoshare"))
	e.Use(middleware.RateLimit(redisdb.NewLimiter(rdb, cfg.RateLimit, cfg.RateWindow)))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cardRepo := mongodb.NewCardRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, log)
	cardService := service.NewCardService(cardRepo, userRepo, log)

	registerRoutes(e,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewCardHandler(cardService),
		middleware.Auth(cfg.JWTSecret),
	)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	return e
}

// registerRoutes wires the public and bearer-protected API routes. Split out
// so tests can mount stub-backed handlers on a bare Echo instance.
func registerRoutes(e *echo.Echo, auth *handler.AuthHandler, users *handler.UserHandler, cards *handler.CardHandler, authMW echo.MiddlewareFunc) {
	e.POST("/signup", auth.Signup)
	e.POST("/signin", auth.Signin)

	g := e.Group("", authMW)

	g.GET("/users", users.List)
	g.GET("/users/me", users.Me)
	g.PATCH("/users/me", users.UpdateProfile)
	g.PATCH("/users/me/avatar", users.UpdateAvatar)
	g.GET("/users/:id", users.Get)

	g.GET("/cards", cards.List)
	g.POST("/cards", cards.Create)
	g.DELETE("/cards/:id", cards.Delete)
	g.PUT("/cards/:id/likes", cards.Like)
	g.DELETE("/cards/:id/likes", cards.Unlike)
}
