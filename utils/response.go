package utils

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// APIError is an error that carries its own HTTP status and machine code.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string { return e.Message }

func NewAPIError(message string, status int, code string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// fieldErrors is satisfied by a failed validator.
type fieldErrors interface {
	Errors() map[string]string
}

func Success(c *fiber.Ctx, data interface{}, code int) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func Paginated(c *fiber.Ctx, data interface{}, page, limit, total, code int) error {
	return c.Status(code).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": NewPaginationInfo(page, limit, total),
	})
}

// Error writes the error envelope. An APIError wins over the passed code; a
// validator result becomes a 400 with per-field details; JSON decode errors
// become 400 INVALID_JSON; everything else keeps the given code and passes
// the underlying message through unredacted.
func Error(c *fiber.Ctx, err error, code int) error {
	message := "Internal Server Error"
	errCode := "INTERNAL_ERROR"
	var details map[string]string

	var apiErr *APIError
	var synErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &apiErr):
		message = apiErr.Message
		errCode = apiErr.Code
		code = apiErr.Status
	default:
		if fe, ok := err.(fieldErrors); ok {
			message = "Validation failed"
			errCode = "VALIDATION_ERROR"
			code = fiber.StatusBadRequest
			details = fe.Errors()
		} else if errors.As(err, &synErr) || errors.As(err, &typeErr) || errors.Is(err, fiber.ErrUnprocessableEntity) {
			message = "Invalid JSON in request body"
			errCode = "INVALID_JSON"
			code = fiber.StatusBadRequest
		} else if err != nil {
			message = err.Error()
		}
	}

	body := fiber.Map{"code": errCode, "message": message}
	if details != nil {
		body["details"] = details
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   body,
	})
}
