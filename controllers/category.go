package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
	"github.com/TcMarsh31/GrocXpressAdmin/store"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
	"github.com/TcMarsh31/GrocXpressAdmin/validation"
)

type Categories struct {
	Store *store.CategoryStore
	Log   *logrus.Logger
}

func (h *Categories) List(c *fiber.Ctx) error {
	items, err := h.Store.GetAll(c.UserContext())
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, items, fiber.StatusOK)
}

func (h *Categories) Get(c *fiber.Ctx) error {
	cat, err := h.Store.GetByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Category")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, cat, fiber.StatusOK)
}

func (h *Categories) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("name", validation.StringRules{Required: true, Min: 1, Max: 255}).
		String("icon", validation.StringRules{Required: true, Max: 500}).
		String("background_color", validation.StringRules{Required: true, Max: 50}).
		String("icon_color", validation.StringRules{Required: true, Max: 50})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	created, err := h.Store.Create(c.UserContext(), models.Category{
		Name:            str(body, "name"),
		Icon:            str(body, "icon"),
		BackgroundColor: str(body, "background_color"),
		IconColor:       str(body, "icon_color"),
	})
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, created, fiber.StatusCreated)
}

func (h *Categories) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("name", validation.StringRules{Max: 255}).
		String("description", validation.StringRules{Max: 1000}).
		String("icon", validation.StringRules{Max: 500})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	fields := map[string]interface{}{}
	for _, key := range []string{"name", "description", "icon"} {
		if has(body, key) {
			fields[key] = body[key]
		}
	}

	updated, err := h.Store.Update(c.UserContext(), c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Category")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, updated, fiber.StatusOK)
}

func (h *Categories) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.Store.Delete(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Category")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, fiber.Map{"id": id}, fiber.StatusOK)
}
