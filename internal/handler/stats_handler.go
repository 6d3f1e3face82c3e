package handler

import (
	"quizmaster/internal/middleware"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// AdminStats godoc
// @Summary Per-qualification statistics
// @Description Student counts and average attempt scores per qualification.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminStatsResponse
// @Security ApiKeyAuth
// @Router /admin/stats [get]
func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	resp, err := h.service.AdminStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UserStats godoc
// @Summary The caller's statistics
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.UserStatsResponse
// @Security ApiKeyAuth
// @Router /student/stats [get]
func (h *StatsHandler) UserStats(c *fiber.Ctx) error {
	resp, err := h.service.UserStats(c.UserContext(), middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
