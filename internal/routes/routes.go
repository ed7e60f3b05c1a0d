package routes

import (
	"time"

	"github.com/devmarket/devmarket-backend/internal/config"
	"github.com/devmarket/devmarket-backend/internal/handlers"
	"github.com/devmarket/devmarket-backend/internal/middleware"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	roles middleware.RoleResolver,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	productHandler *handlers.ProductHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	uploadHandler *handlers.UploadHandler,
	settingsHandler *handlers.SettingsHandler,
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
	api.Get("/settings", settingsHandler.GetSettings)

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

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Admin panel — JWT plus DB-backed role gate
	admin := api.Group("/admin",
		middleware.JWTProtected(cfg),
		middleware.RoleRequired(roles, models.RoleAdmin),
	)
	admin.Get("/products", productHandler.ListAll)
	admin.Put("/products/update-status", productHandler.UpdateStatus)
	admin.Get("/profile", profileHandler.Get)
	admin.Put("/profile", profileHandler.UpdateAdmin)
	admin.Get("/users", userHandler.List)
	admin.Post("/users/update-user-status", userHandler.UpdateStatus)
	admin.Delete("/users/delete-user", userHandler.Delete)
	admin.Put("/settings/:key", settingsHandler.SetKey)
	admin.Delete("/settings/:key", settingsHandler.DeleteKey)

	// Developer workspace
	developer := api.Group("/developer",
		middleware.JWTProtected(cfg),
		middleware.RoleRequired(roles, models.RoleDeveloper),
	)
	developer.Get("/products", productHandler.ListOwn)
	developer.Post("/products", productHandler.Create)
	developer.Put("/products/change-products", productHandler.Update)
	developer.Delete("/products/change-products", productHandler.Delete)
	developer.Get("/profile", profileHandler.Get)
	developer.Put("/profile", profileHandler.UpdateDeveloper)
	developer.Post("/uploads", uploadHandler.UploadImage)
}
