package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/middleware"
	"github.com/TcMarsh31/GrocXpressAdmin/models"
	"github.com/TcMarsh31/GrocXpressAdmin/store"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
	"github.com/TcMarsh31/GrocXpressAdmin/validation"
)

type Banners struct {
	Store *store.BannerStore
	Log   *logrus.Logger
	// JWTSecret lets List resolve an optional session for the admin view
	// without making the whole route auth-gated.
	JWTSecret string
}

// List serves two audiences: the public storefront gets active banners,
// and ?admin=true with a valid session gets the full paginated list.
func (h *Banners) List(c *fiber.Ctx) error {
	if c.Query("admin") == "true" {
		if _, err := middleware.ParseBearer(c.Get("Authorization"), h.JWTSecret); err == nil {
			page, limit := utils.ParsePagination(c)
			items, total, err := h.Store.GetAll(c.UserContext(), page, limit)
			if err != nil {
				return utils.Error(c, err, fiber.StatusInternalServerError)
			}
			return utils.Paginated(c, items, page, limit, total, fiber.StatusOK)
		}
	}

	items, err := h.Store.GetActive(c.UserContext())
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, items, fiber.StatusOK)
}

func (h *Banners) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("image_url", validation.StringRules{Required: true, Max: 500}).
		String("title", validation.StringRules{Required: true, Min: 1, Max: 255}).
		String("subtitle", validation.StringRules{Max: 500}).
		Boolean("is_active", validation.BoolRules{})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	// Banners default to active unless explicitly disabled.
	isActive := true
	if b, ok := body["is_active"].(bool); ok {
		isActive = b
	}

	created, err := h.Store.Create(c.UserContext(), models.Banner{
		ImageURL: str(body, "image_url"),
		Title:    str(body, "title"),
		Subtitle: strPtr(body, "subtitle"),
		IsActive: isActive,
	})
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, created, fiber.StatusCreated)
}

func (h *Banners) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("title", validation.StringRules{Max: 255}).
		String("description", validation.StringRules{Max: 1000}).
		String("image_url", validation.StringRules{Max: 500}).
		String("link_url", validation.StringRules{Max: 500}).
		String("start_date", validation.StringRules{}).
		String("end_date", validation.StringRules{}).
		Number("position", validation.NumberRules{Min: validation.Num(0)}).
		Boolean("is_active", validation.BoolRules{})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	fields := map[string]interface{}{}
	for _, key := range []string{"title", "description", "image_url", "link_url", "position", "is_active"} {
		if has(body, key) {
			fields[key] = body[key]
		}
	}
	for _, key := range []string{"start_date", "end_date"} {
		if err := pickDate(body, key, fields); err != nil {
			return utils.Error(c, err, fiber.StatusBadRequest)
		}
	}

	updated, err := h.Store.Update(c.UserContext(), c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Banner")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, updated, fiber.StatusOK)
}

func (h *Banners) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.Store.Delete(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Banner")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, fiber.Map{"id": id}, fiber.StatusOK)
}
