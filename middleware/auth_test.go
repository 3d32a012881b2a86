package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, mutate func(*Claims)) string {
	t.Helper()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "user@example.com",
	}
	if mutate != nil {
		mutate(claims)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestParseBearer(t *testing.T) {
	token := signToken(t, testSecret, nil)

	claims, err := ParseBearer("Bearer "+token, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "user-1" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ParseBearer("", testSecret); err == nil {
		t.Fatal("empty header should fail")
	}
	if _, err := ParseBearer(token, testSecret); err == nil {
		t.Fatal("missing Bearer prefix should fail")
	}
	if _, err := ParseBearer("Bearer "+token, "other-secret"); err == nil {
		t.Fatal("wrong secret should fail")
	}
}

func TestParseBearerExpired(t *testing.T) {
	token := signToken(t, testSecret, func(c *Claims) {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	})
	if _, err := ParseBearer("Bearer "+token, testSecret); err == nil {
		t.Fatal("expired token should fail")
	}
}

func TestIsAdmin(t *testing.T) {
	c := &Claims{}
	if c.IsAdmin() {
		t.Fatal("empty claims must not be admin")
	}
	c.UserMetadata.Role = "admin"
	if !c.IsAdmin() {
		t.Fatal("user_metadata role should grant admin")
	}
	c = &Claims{AppMetadata: AppMetadata{Roles: []string{"editor", "admin"}}}
	if !c.IsAdmin() {
		t.Fatal("app_metadata roles should grant admin")
	}
	c = &Claims{UserMetadata: UserMetadata{Role: "customer"}}
	if c.IsAdmin() {
		t.Fatal("non-admin role must not grant admin")
	}
}

func gateStatus(t *testing.T, gate fiber.Handler, authHeader string) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", gate, func(c *fiber.Ctx) error {
		return c.SendString("through")
	})
	req := httptest.NewRequest("GET", "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireAuth(t *testing.T) {
	gate := RequireAuth(testSecret)

	status, body := gateStatus(t, gate, "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("no token: status = %d", status)
	}
	var env struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatal(err)
	}
	if env.Error.Message != "Authentication required" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}

	status, body = gateStatus(t, gate, "Bearer "+signToken(t, testSecret, nil))
	if status != fiber.StatusOK || body != "through" {
		t.Fatalf("valid token: status = %d body = %q", status, body)
	}
}

func TestRequireAdmin(t *testing.T) {
	gate := RequireAdmin(testSecret)

	status, body := gateStatus(t, gate, "Bearer "+signToken(t, testSecret, nil))
	if status != fiber.StatusUnauthorized {
		t.Fatalf("non-admin: status = %d", status)
	}
	var env struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatal(err)
	}
	if env.Error.Message != "Admin privileges required" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}

	admin := signToken(t, testSecret, func(c *Claims) { c.UserMetadata.Role = "admin" })
	status, body = gateStatus(t, gate, "Bearer "+admin)
	if status != fiber.StatusOK || body != "through" {
		t.Fatalf("admin token: status = %d body = %q", status, body)
	}
}
