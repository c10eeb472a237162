package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/streethazard/reporter/internal/config"
	"github.com/streethazard/reporter/internal/handlers"
	"github.com/streethazard/reporter/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	userHandler *handlers.UserHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)
	api.Get("/hazard-types", reportHandler.HazardTypes)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual
	// routes so public routes stay public
	jwt := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Get("/me", jwt, authHandler.Me)

	api.Post("/reports", jwt, reportHandler.Create)
	api.Get("/reports", jwt, reportHandler.List)
	api.Get("/reports/:id", jwt, reportHandler.Get)
	api.Get("/dashboard", jwt, reportHandler.Dashboard)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Patch("/reports/:id/status", reportHandler.ToggleStatus)
	admin.Delete("/reports/:id", reportHandler.Delete)
	admin.Get("/users", userHandler.ListUsers)
	admin.Post("/users/promote", userHandler.PromoteUser)
	admin.Get("/settings", userHandler.Settings)
}
