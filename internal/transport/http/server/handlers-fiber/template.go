package handlers_fiber

import (
	"net/http"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetAgendaTemplates returns the read-only template catalog.
func (h *Handler) GetAgendaTemplates(c *fiber.Ctx) error {
	templates, err := h.uc.Templates(c.Context())
	if err != nil {
		h.log.Errorw("failed to get agenda templates", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Templates []api.AgendaTemplate `json:"templates"`
	}{Templates: mapper.ToAPITemplateList(templates)}
	return c.Status(http.StatusOK).JSON(resp)
}
