package main

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/TcMarsh31/GrocXpressAdmin/condb"
	"github.com/TcMarsh31/GrocXpressAdmin/config"
	"github.com/TcMarsh31/GrocXpressAdmin/middleware"
	"github.com/TcMarsh31/GrocXpressAdmin/routes"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)
	log := utils.Log

	pool, err := condb.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("postgres connect failed")
	}
	defer pool.Close()

	rdb := condb.ConnectRedis(cfg.RedisAddr)

	app := fiber.New(fiber.Config{
		AppName: "grocxpress-admin-api",
	})
	app.Use(middleware.CORS(cfg))

	routes.Register(app, routes.Deps{Cfg: cfg, DB: pool, Redis: rdb, Log: log})

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
