package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

// Claims is the typed view of the auth provider's access token. Role data
// lives in two places in provider tokens: a single role string in
// user_metadata, or a roles list in app_metadata.
type Claims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	AppMetadata  AppMetadata  `json:"app_metadata"`
}

type UserMetadata struct {
	Role string `json:"role"`
}

type AppMetadata struct {
	Roles []string `json:"roles"`
}

func (c *Claims) IsAdmin() bool {
	if c.UserMetadata.Role == "admin" {
		return true
	}
	for _, r := range c.AppMetadata.Roles {
		if r == "admin" {
			return true
		}
	}
	return false
}

// ParseBearer verifies an Authorization header value and returns the token's
// claims. HS256 only; anything else is rejected.
func ParseBearer(header, secret string) (*Claims, error) {
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireAuth resolves the caller's session and stores the claims in
// c.Locals("user"). Failures never propagate; they become 401 envelopes.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := ParseBearer(c.Get("Authorization"), secret)
		if err != nil {
			return utils.Error(c, utils.NewAPIError("Authentication required", fiber.StatusUnauthorized, "UNAUTHORIZED"), fiber.StatusUnauthorized)
		}
		c.Locals("user", claims)
		return c.Next()
	}
}

// RequireAdmin is RequireAuth plus an admin role check.
func RequireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := ParseBearer(c.Get("Authorization"), secret)
		if err != nil {
			return utils.Error(c, utils.NewAPIError("Authentication required", fiber.StatusUnauthorized, "UNAUTHORIZED"), fiber.StatusUnauthorized)
		}
		if !claims.IsAdmin() {
			return utils.Error(c, utils.NewAPIError("Admin privileges required", fiber.StatusUnauthorized, "UNAUTHORIZED"), fiber.StatusUnauthorized)
		}
		c.Locals("user", claims)
		return c.Next()
	}
}

// UserFromContext returns the claims stashed by RequireAuth/RequireAdmin,
// or nil on an unauthenticated request.
func UserFromContext(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals("user").(*Claims)
	return claims
}
