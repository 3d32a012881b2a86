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

type OrderItems struct {
	Store *store.OrderItemStore
	Log   *logrus.Logger
}

// List handles GET /api/order-items?orderId=...
func (h *OrderItems) List(c *fiber.Ctx) error {
	orderID := c.Query("orderId")
	if orderID == "" {
		return utils.Error(c, utils.NewAPIError("orderId query parameter is required", fiber.StatusBadRequest, "BAD_REQUEST"), fiber.StatusBadRequest)
	}

	items, err := h.Store.GetByOrderID(c.UserContext(), orderID)
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, items, fiber.StatusOK)
}

func (h *OrderItems) Get(c *fiber.Ctx) error {
	it, err := h.Store.GetByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order item")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, it, fiber.StatusOK)
}

func (h *OrderItems) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("order_id", validation.StringRules{Required: true}).
		String("product_id", validation.StringRules{Required: true}).
		Number("quantity", validation.NumberRules{Required: true, Min: validation.Num(1)}).
		Number("price", validation.NumberRules{Required: true, Min: validation.Num(0)})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	created, err := h.Store.Create(c.UserContext(), models.OrderItem{
		OrderID:   str(body, "order_id"),
		ProductID: str(body, "product_id"),
		Quantity:  intval(body, "quantity"),
		Price:     num(body, "price"),
	})
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, created, fiber.StatusCreated)
}

func (h *OrderItems) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.Number("quantity", validation.NumberRules{Min: validation.Num(1)}).
		Number("price", validation.NumberRules{Min: validation.Num(0)})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	fields := map[string]interface{}{}
	if has(body, "quantity") {
		fields["quantity"] = body["quantity"]
	}
	if has(body, "price") {
		fields["price"] = body["price"]
	}

	updated, err := h.Store.Update(c.UserContext(), c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order item")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, updated, fiber.StatusOK)
}

func (h *OrderItems) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.Store.Delete(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order item")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, fiber.Map{"id": id}, fiber.StatusOK)
}
