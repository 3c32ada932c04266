package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/loftlabs/loft-backend/internal/config"
	"github.com/loftlabs/loft-backend/internal/handlers"
	"github.com/loftlabs/loft-backend/internal/middleware"
	"github.com/loftlabs/loft-backend/internal/ws"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	reportHandler *handlers.ReportHandler,
	matchHandler *handlers.MatchHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *ws.Handler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/token", authHandler.Token)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes get the JWT middleware individually so it
	// never shadows the public ones above.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Reports
	reports := api.Group("/reports", middleware.JWTProtected(cfg))
	reports.Post("/lost", reportHandler.CreateLost)
	reports.Post("/found", reportHandler.CreateFound)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.Get)

	// Matches
	matches := api.Group("/matches", middleware.JWTProtected(cfg))
	matches.Get("/report/:id", matchHandler.ListForReport)
	matches.Post("/:id/status", matchHandler.SetStatus)

	// Profiles
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/me", userHandler.GetProfile)
	users.Put("/me", userHandler.UpdateProfile)

	// Notifications
	api.Post("/notifications/send_mock", middleware.JWTProtected(cfg), notificationHandler.SendMock)

	// Admin
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/notifications", notificationHandler.List)

	// Real-time channel. The rate limiter is deliberately not applied:
	// a WebSocket is one long-lived request.
	app.Use("/ws", wsHandler.Upgrade)
	app.Get("/ws/:userId", wsHandler.Serve())
}
