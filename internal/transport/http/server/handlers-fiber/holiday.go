package handlers_fiber

import (
	"net/http"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetHolidays returns the stored holiday list.
func (h *Handler) GetHolidays(c *fiber.Ctx) error {
	holidays, err := h.uc.Holidays(c.Context())
	if err != nil {
		h.log.Errorw("failed to get holidays", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Holidays []api.Holiday `json:"holidays"`
	}{Holidays: mapper.ToAPIHolidayList(holidays)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostHoliday registers a holiday.
func (h *Handler) PostHoliday(c *fiber.Ctx) error {
	var body api.HolidayRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msgInvalidBody})
	}

	holiday, err := h.uc.AddHoliday(c.Context(), body.Date, body.Name)
	if err != nil {
		h.log.Infow("failed to add holiday", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Holiday api.Holiday `json:"holiday"`
	}{Holiday: mapper.ToAPIHoliday(*holiday)}
	return c.Status(http.StatusCreated).JSON(resp)
}

// DeleteHoliday removes a holiday.
func (h *Handler) DeleteHoliday(c *fiber.Ctx) error {
	if err := h.uc.RemoveHoliday(c.Context(), c.Params("id")); err != nil {
		h.log.Infow("failed to remove holiday", "error", err.Error(), "holiday_id", c.Params("id"))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct{}{})
}
