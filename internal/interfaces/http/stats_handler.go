package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freelancer-crm/internal/application/dto"
	"github.com/jhoicas/freelancer-crm/internal/domain/repository"
)

// StatsHandler expone el volumen de registros persistidos.
type StatsHandler struct {
	repo repository.StatsRepository
}

// NewStatsHandler construye el handler.
func NewStatsHandler(repo repository.StatsRepository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// Get GET /api/stats
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	counts, err := h.repo.CountRows(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatsResponse{Counts: counts})
}
