package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

// parseBody decodes the JSON body into a map so the validator can inspect
// raw field shapes before anything is coerced into a struct.
func parseBody(c *fiber.Ctx) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func has(m map[string]interface{}, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

// strPtr returns nil for missing or empty strings, matching the "value or
// null" treatment of optional text columns.
func strPtr(m map[string]interface{}, key string) *string {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func num(m map[string]interface{}, key string) float64 {
	switch n := m[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func intval(m map[string]interface{}, key string) int {
	return int(num(m, key))
}

// pickDate parses an optional ISO 8601 field into the update map. Presence
// with an unparseable value is reported, not silently dropped.
func pickDate(m map[string]interface{}, key string, fields map[string]interface{}) error {
	if !has(m, key) {
		return nil
	}
	s := str(m, key)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if t, err = time.Parse("2006-01-02", s); err != nil {
			return utils.NewAPIError(key+" must be an ISO 8601 date", fiber.StatusBadRequest, "VALIDATION_ERROR")
		}
	}
	fields[key] = t
	return nil
}

func notFound(c *fiber.Ctx, what string) error {
	return utils.Error(c, utils.NewAPIError(what+" not found", fiber.StatusNotFound, "NOT_FOUND"), fiber.StatusNotFound)
}
