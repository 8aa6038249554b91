package handlers_fiber

import (
	"net/http"
	"strconv"
	"time"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/entities"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSchedule lists the events of one month. Missing year/month query
// parameters default to the current month.
func (h *Handler) GetSchedule(c *fiber.Ctx) error {
	now := time.Now()
	year, ok := queryIntDefault(c, "year", now.Year())
	if !ok {
		return writeError(c, entities.ErrInvalidYearMonth)
	}
	month, ok := queryIntDefault(c, "month", int(now.Month()))
	if !ok {
		return writeError(c, entities.ErrInvalidYearMonth)
	}

	events, err := h.uc.Events(c.Context(), year, month)
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		Events []api.Event `json:"events"`
	}{Events: mapper.ToAPIEventList(events)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostSchedule creates an event and reports the notification outcome.
func (h *Handler) PostSchedule(c *fiber.Ctx) error {
	var body api.EventRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msgInvalidBody})
	}

	event, status, err := h.uc.CreateEvent(c.Context(), mapper.FromAPIEventRequest(body))
	if err != nil {
		h.log.Infow("failed to create event", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Event       api.Event `json:"event"`
		SlackStatus *string   `json:"slackStatus"`
	}{
		Event:       mapper.ToAPIEvent(*event),
		SlackStatus: slackStatusMessage(status),
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PutSchedule revalidates and replaces an existing event.
func (h *Handler) PutSchedule(c *fiber.Ctx) error {
	var body api.EventRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msgInvalidBody})
	}

	event, err := h.uc.UpdateEvent(c.Context(), c.Params("id"), mapper.FromAPIEventRequest(body))
	if err != nil {
		h.log.Infow("failed to update event", "error", err.Error(), "event_id", c.Params("id"))
		return writeError(c, err)
	}

	resp := struct {
		Event api.Event `json:"event"`
	}{Event: mapper.ToAPIEvent(*event)}
	return c.Status(http.StatusOK).JSON(resp)
}

// DeleteSchedule removes an event.
func (h *Handler) DeleteSchedule(c *fiber.Ctx) error {
	if err := h.uc.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		h.log.Infow("failed to delete event", "error", err.Error(), "event_id", c.Params("id"))
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct{}{})
}

// queryIntDefault reads an integer query parameter, falling back when the
// parameter is absent and failing when it does not parse.
func queryIntDefault(c *fiber.Ctx, key string, fallback int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

// slackStatusMessage renders the notification outcome the way the UI shows
// it; nil means no webhook is configured and the field stays null.
func slackStatusMessage(status entities.NotifyStatus) *string {
	var msg string
	switch status {
	case entities.NotifySent:
		msg = "Slack への送信に成功しました"
	case entities.NotifyFailed:
		msg = "Slack への送信に失敗しました"
	case entities.NotifyError:
		msg = "Slack への送信でエラーが発生しました"
	default:
		return nil
	}
	return &msg
}
