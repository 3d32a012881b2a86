package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/config"
)

func TestLoginRateLimitDisabledWithoutRedis(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	app.Get("/login", LoginRateLimit(config.Config{}, nil, log), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 20; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: status = %d", i, resp.StatusCode)
		}
	}
}

func TestLoginRateLimitDisabledInProduction(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	cfg := config.Config{AppEnv: "production"}
	app.Get("/login", LoginRateLimit(cfg, nil, log), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
