package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shaheencodecrafters/marketplace-service/internal/api/http/handlers"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Sessions   *handlers.SessionsHandler
	Users      *handlers.UsersHandler
	Orders     *handlers.OrdersHandler
	Categories *handlers.CategoriesHandler
	Products   *handlers.ProductsHandler
	Sliders    *handlers.SlidersHandler
	Session    *session.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Sessions.Login)
	app.Post("/logout", cfg.Sessions.Logout)
	app.Post("/social-signup", cfg.Sessions.SocialSignup)

	// Every /api route resolves the session cookie; individual routes opt
	// into requiring it.
	api := app.Group("/api", cfg.Session.Handle)

	api.Get("/user/:id", cfg.Users.GetUser)
	api.Put("/user/email/:id", cfg.Session.Require, cfg.Users.UpdateEmail)
	api.Put("/user/password/:id", cfg.Session.Require, cfg.Users.UpdatePassword)

	api.Get("/my-orders/:userId", cfg.Session.Require, cfg.Orders.ListMine)
	api.Post("/orders", cfg.Orders.Create)
	api.Post("/orders/payment", cfg.Orders.Payment)

	api.Get("/categories", cfg.Categories.List)
	api.Get("/categories/:id", cfg.Categories.Get)
	api.Post("/categories", cfg.Session.Require, cfg.Categories.Create)
	api.Put("/categories/:id", cfg.Session.Require, cfg.Categories.Update)
	api.Delete("/categories/:id", cfg.Session.Require, cfg.Categories.Delete)

	api.Get("/products", cfg.Products.List)
	api.Get("/products/category/:categoryId", cfg.Products.ListByCategory)
	api.Get("/products/:id", cfg.Products.Get)
	api.Post("/products", cfg.Session.Require, cfg.Products.Create)
	api.Put("/products/:id", cfg.Session.Require, cfg.Products.Update)
	api.Delete("/products/:id", cfg.Session.Require, cfg.Products.Delete)

	api.Get("/sliders", cfg.Sliders.List)
	api.Get("/sliders/:id", cfg.Sliders.Get)
	api.Post("/sliders", cfg.Session.Require, cfg.Sliders.Create)
	api.Put("/sliders/:id", cfg.Session.Require, cfg.Sliders.Update)
	api.Delete("/sliders/:id", cfg.Session.Require, cfg.Sliders.Delete)
}
