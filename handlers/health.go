package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck godoc
// @Summary  Health check
// @Tags     health
// @Produce  plain
// @Success  200 {string} string "OK"
// @Router   /healthcheck [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	return c.SendString("OK")
}
