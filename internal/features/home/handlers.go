package home

import "github.com/gofiber/fiber/v2"

// Handler exposes home progress and dashboard stats over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Home handles GET /api/home
func (h *Handler) Home(c *fiber.Ctx) error {
	return c.JSON(h.service.Home())
}

// Dashboard handles GET /api/stats
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.service.Dashboard())
}
