package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/store"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

type Dashboard struct {
	Store *store.DashboardStore
	Log   *logrus.Logger
}

func (h *Dashboard) Stats(c *fiber.Ctx) error {
	stats, err := h.Store.Stats(c.UserContext())
	if err != nil {
		return utils.Error(c, err, fiber.StatusInternalServerError)
	}
	return utils.Success(c, stats, fiber.StatusOK)
}
