package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/config"
	"github.com/TcMarsh31/GrocXpressAdmin/controllers"
	"github.com/TcMarsh31/GrocXpressAdmin/middleware"
	"github.com/TcMarsh31/GrocXpressAdmin/store"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

type Deps struct {
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
	Log   *logrus.Logger
}

func Register(app *fiber.App, d Deps) {
	requireAuth := middleware.RequireAuth(d.Cfg.JWTSecret)
	requireAdmin := middleware.RequireAdmin(d.Cfg.JWTSecret)

	products := &controllers.Products{Store: &store.ProductStore{DB: d.DB}, Log: d.Log}
	categories := &controllers.Categories{Store: &store.CategoryStore{DB: d.DB}, Log: d.Log}
	orders := &controllers.Orders{
		Store:     &store.OrderStore{DB: d.DB},
		ItemStore: &store.OrderItemStore{DB: d.DB},
		Log:       d.Log,
	}
	orderItems := &controllers.OrderItems{Store: &store.OrderItemStore{DB: d.DB}, Log: d.Log}
	banners := &controllers.Banners{Store: &store.BannerStore{DB: d.DB}, Log: d.Log, JWTSecret: d.Cfg.JWTSecret}
	dashboard := &controllers.Dashboard{Store: &store.DashboardStore{DB: d.DB}, Log: d.Log}
	auth := &controllers.Auth{}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")

	// products; the static paths must come before /products/:id
	api.Get("/products", products.List)
	api.Post("/products", requireAdmin, products.Create)
	api.Get("/products/featured", products.Featured)
	api.Get("/products/category/:categoryId", products.ByCategory)
	api.Get("/products/:id", products.Get)
	api.Put("/products/:id", requireAdmin, products.Update)
	api.Delete("/products/:id", requireAdmin, products.Delete)

	// categories
	api.Get("/categories", categories.List)
	api.Post("/categories", requireAdmin, categories.Create)
	api.Get("/categories/:id", categories.Get)
	api.Put("/categories/:id", requireAdmin, categories.Update)
	api.Delete("/categories/:id", requireAdmin, categories.Delete)

	// orders
	api.Get("/orders", requireAuth, orders.List)
	api.Post("/orders", requireAuth, orders.Create)
	api.Get("/orders/:id/track", orders.Track)
	api.Put("/orders/:id/track", requireAdmin, orders.UpdateTrack)
	api.Get("/orders/:id", requireAuth, orders.Get)
	api.Put("/orders/:id", requireAdmin, orders.Update)

	// order items
	api.Get("/order-items", orderItems.List)
	api.Post("/order-items", orderItems.Create)
	api.Get("/order-items/:id", orderItems.Get)
	api.Put("/order-items/:id", orderItems.Update)
	api.Delete("/order-items/:id", orderItems.Delete)

	// banners
	api.Get("/banners", banners.List)
	api.Post("/banners", requireAdmin, banners.Create)
	api.Put("/banners/:id", requireAdmin, banners.Update)
	api.Delete("/banners/:id", requireAdmin, banners.Delete)

	// dashboard
	api.Get("/dashboard/stats", requireAdmin, dashboard.Stats)

	// auth; the dev throttle guards the whole group
	authGroup := api.Group("/auth", middleware.LoginRateLimit(d.Cfg, d.Redis, d.Log))
	authGroup.Get("/me", requireAuth, auth.Me)

	// anything else on a known path is a method mismatch
	for _, path := range []string{
		"/products/featured",
		"/products/category/:categoryId",
		"/products/:id",
		"/products",
		"/categories/:id",
		"/categories",
		"/orders/:id/track",
		"/orders/:id",
		"/orders",
		"/order-items/:id",
		"/order-items",
		"/banners/:id",
		"/banners",
		"/dashboard/stats",
		"/auth/me",
	} {
		api.All(path, methodNotAllowed)
	}

	app.Use(func(c *fiber.Ctx) error {
		return utils.Error(c, utils.NewAPIError("Route not found", fiber.StatusNotFound, "NOT_FOUND"), fiber.StatusNotFound)
	})
}

func methodNotAllowed(c *fiber.Ctx) error {
	return utils.Error(c, utils.NewAPIError("Method not allowed", fiber.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"), fiber.StatusMethodNotAllowed)
}
