package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/config"
	"github.com/TcMarsh31/GrocXpressAdmin/middleware"
)

const testSecret = "routes-test-secret"

// testApp wires the routes the way main does, minus the database. Only
// routes that never reach a store are exercised here.
func testApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Use(middleware.CORS(cfg))
	Register(app, Deps{Cfg: cfg, Log: log})
	return app
}

func token(t *testing.T, admin bool) string {
	t.Helper()
	claims := &middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "user@example.com",
	}
	if admin {
		claims.UserMetadata.Role = "admin"
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func decodeError(t *testing.T, resp io.Reader) (code, message string) {
	t.Helper()
	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Success {
		t.Fatal("error envelope claims success")
	}
	return env.Error.Code, env.Error.Message
}

func TestHealthz(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestPreflightAnswered(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("OPTIONS", "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest("PATCH", "/api/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusMethodNotAllowed {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	code, _ := decodeError(t, resp.Body)
	if code != "METHOD_NOT_ALLOWED" {
		t.Fatalf("code = %q", code)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	code, message := decodeError(t, resp.Body)
	if code != "NOT_FOUND" || message != "Route not found" {
		t.Fatalf("code = %q message = %q", code, message)
	}
}

func TestOrdersRequireAuth(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	_, message := decodeError(t, resp.Body)
	if message != "Authentication required" {
		t.Fatalf("message = %q", message)
	}
}

func TestOrderUpdateRequiresAdmin(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("PUT", "/api/orders/ord-1", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, false))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	_, message := decodeError(t, resp.Body)
	if message != "Admin privileges required" {
		t.Fatalf("message = %q", message)
	}
}

func TestBannerWritesRequireAdmin(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest("POST", "/api/banners", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestDashboardRequiresAdmin(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, false))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAuthMe(t *testing.T) {
	app := testApp()
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, true))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var env struct {
		Success bool `json:"success"`
		Data    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
			Admin bool   `json:"admin"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if !env.Success || env.Data.ID != "user-1" || env.Data.Email != "user@example.com" || !env.Data.Admin {
		t.Fatalf("unexpected payload: %+v", env)
	}
}
