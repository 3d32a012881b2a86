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

type Orders struct {
	Store     *store.OrderStore
	ItemStore *store.OrderItemStore
	Log       *logrus.Logger
}

func (h *Orders) List(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	items, total, err := h.Store.GetAll(c.UserContext(), page, limit, c.Query("userId"))
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Paginated(c, items, page, limit, total, fiber.StatusOK)
}

func (h *Orders) Get(c *fiber.Ctx) error {
	o, err := h.Store.GetByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, o, fiber.StatusOK)
}

// Create inserts the order, then the items as a second independent write.
// An item failure is logged and swallowed: the order stands without its
// lines rather than failing the whole request.
func (h *Orders) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("user_id", validation.StringRules{}).
		Array("items", validation.ArrayRules{Required: true, MinItems: 1}).
		Number("total_amount", validation.NumberRules{Required: true, Min: validation.Num(0)}).
		Number("item_count", validation.NumberRules{Required: true, Min: validation.Num(1)})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	created, err := h.Store.Create(c.UserContext(), models.Order{
		OrderNumber: utils.NewOrderNumber(),
		UserID:      strPtr(body, "user_id"),
		ItemCount:   intval(body, "item_count"),
		TotalAmount: num(body, "total_amount"),
	})
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}

	if rawItems, ok := body["items"].([]interface{}); ok && len(rawItems) > 0 {
		items := make([]models.OrderItem, 0, len(rawItems))
		for _, raw := range rawItems {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			items = append(items, models.OrderItem{
				OrderID:   created.ID,
				ProductID: str(m, "product_id"),
				Quantity:  intval(m, "quantity"),
				Price:     num(m, "price"),
			})
		}
		if err := h.ItemStore.CreateBatch(c.UserContext(), items); err != nil {
			h.Log.WithError(err).WithField("order_id", created.ID).Error("failed to create order items")
		}
	}

	return utils.Success(c, created, fiber.StatusCreated)
}

func (h *Orders) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.Number("item_count", validation.NumberRules{Min: validation.Num(1)}).
		Number("total_amount", validation.NumberRules{Min: validation.Num(0)}).
		String("order_confirmed_date", validation.StringRules{}).
		String("order_shipped_date", validation.StringRules{}).
		String("out_for_delivery_date", validation.StringRules{}).
		String("order_delivered_date", validation.StringRules{})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	fields := map[string]interface{}{}
	if has(body, "item_count") {
		fields["item_count"] = body["item_count"]
	}
	if has(body, "total_amount") {
		fields["total_amount"] = body["total_amount"]
	}
	for _, key := range []string{"order_confirmed_date", "order_shipped_date", "out_for_delivery_date", "order_delivered_date"} {
		if err := pickDate(body, key, fields); err != nil {
			return utils.Error(c, err, fiber.StatusBadRequest)
		}
	}

	updated, err := h.Store.Update(c.UserContext(), c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, updated, fiber.StatusOK)
}

// Track projects the milestone timestamps into a delivery timeline.
func (h *Orders) Track(c *fiber.Ctx) error {
	o, err := h.Store.GetTracking(c.UserContext(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, fiber.Map{
		"orderId":     o.ID,
		"orderNumber": o.OrderNumber,
		"status":      o.DeliveryStatus(),
		"timeline":    o.Timeline(),
	}, fiber.StatusOK)
}

// UpdateTrack sets milestone timestamps. Milestones are only ever set
// forward; nothing here clears one.
func (h *Orders) UpdateTrack(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return utils.Error(c, err, fiber.StatusBadRequest)
	}

	v := validation.New(body)
	v.String("order_confirmed_date", validation.StringRules{}).
		String("order_shipped_date", validation.StringRules{}).
		String("out_for_delivery_date", validation.StringRules{}).
		String("order_delivered_date", validation.StringRules{})
	if !v.Valid() {
		return utils.Error(c, v, fiber.StatusBadRequest)
	}

	fields := map[string]interface{}{}
	for _, key := range []string{"order_confirmed_date", "order_shipped_date", "out_for_delivery_date", "order_delivered_date"} {
		if err := pickDate(body, key, fields); err != nil {
			return utils.Error(c, err, fiber.StatusBadRequest)
		}
	}

	updated, err := h.Store.Update(c.UserContext(), c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c, "Order")
	}
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, updated, fiber.StatusOK)
}
