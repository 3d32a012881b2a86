package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
	"github.com/TcMarsh31/GrocXpressAdmin/store"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
	"github.com/TcMarsh31/GrocXpressAdmin/validation"
)

type Products struct {
	Store *store.ProductStore
	Log   *logrus.Logger
}

// List handles GET /api/products with pagination and the categoryId,
// search and featured filters.
func (h *Products) List(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)
	filters := store.ProductFilters{
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
		Featured:   c.Query("featured") == "true",
	}

	items, total, err := h.Store.GetAll(c.UserContext(), page, limit, filters)
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Paginated(c, items, page, limit, total, fiber.StatusOK)
}

func (h *Products) ByCategory(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	items, total, err := h.Store.GetByCategory(c.UserContext(), c.Params("categoryId"), page, limit)
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Paginated(c, items, page, limit, total, fiber.StatusOK)
}

func (h *Products) Featured(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	items, err := h.Store.GetFeatured(c.UserContext(), limit)
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, items, fiber.StatusOK)
}

func (h *Products) Get(c *fiber.Ctx) error {
	p, err := h.Store.GetByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Product")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, p, fiber.StatusOK)
}

func (h *Products) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("product_name", validation.StringRules{Required: true, Min: 1, Max: 255}).
		String("description", validation.StringRules{Max: 2000}).
		Number("price", validation.NumberRules{Required: true, Min: validation.Num(0)}).
		Number("stock", validation.NumberRules{Required: true, Min: validation.Num(0)}).
		String("category_id", validation.StringRules{Required: true}).
		String("image_url", validation.StringRules{Required: true, Max: 500}).
		String("weight", validation.StringRules{Max: 100}).
		String("badge", validation.StringRules{Max: 100}).
		Number("rating", validation.NumberRules{Min: validation.Num(0), Max: validation.Num(5)}).
		Number("review_count", validation.NumberRules{Min: validation.Num(0)}).
		String("background_color", validation.StringRules{Max: 50})
	if !v.Valid() {
		h.Log.WithField("errors", v.Errors()).Debug("product create validation failed")
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	p := models.Product{
		ProductName:     str(body, "product_name"),
		Description:     strPtr(body, "description"),
		Price:           num(body, "price"),
		Stock:           intval(body, "stock"),
		CategoryID:      str(body, "category_id"),
		ImageURL:        str(body, "image_url"),
		Weight:          strPtr(body, "weight"),
		Badge:           strPtr(body, "badge"),
		Rating:          num(body, "rating"),
		ReviewCount:     intval(body, "review_count"),
		BackgroundColor: strPtr(body, "background_color"),
	}

	created, err := h.Store.Create(c.UserContext(), p)
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, created, fiber.StatusCreated)
}

func (h *Products) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("product_name", validation.StringRules{Max: 255}).
		String("description", validation.StringRules{Max: 2000}).
		Number("price", validation.NumberRules{Min: validation.Num(0)}).
		Number("stock", validation.NumberRules{Min: validation.Num(0)}).
		String("category_id", validation.StringRules{}).
		String("image_url", validation.StringRules{Max: 500}).
		Boolean("is_featured", validation.BoolRules{})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	fields := map[string]interface{}{}
	for _, key := range []string{"product_name", "description", "price", "stock", "category_id", "image_url", "is_featured"} {
		if has(body, key) {
			fields[key] = body[key]
		}
	}

	updated, err := h.Store.Update(c.UserContext(), c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Product")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, updated, fiber.StatusOK)
}

func (h *Products) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.Store.Delete(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Product")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, fiber.Map{"id": id}, fiber.StatusOK)
}
