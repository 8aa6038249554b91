// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"net/http"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes binds every API route on the fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/api/projects", h.GetProjects)
	app.Post("/api/projects/custom", h.PostCustomProject)
	app.Post("/api/projects/:id/custom-members", h.PostCustomMembers)
	app.Get("/api/agenda-templates", h.GetAgendaTemplates)
	app.Get("/api/schedule", h.GetSchedule)
	app.Post("/api/schedule", h.PostSchedule)
	app.Put("/api/schedule/:id", h.PutSchedule)
	app.Delete("/api/schedule/:id", h.DeleteSchedule)
	app.Get("/api/holidays", h.GetHolidays)
	app.Post("/api/holidays", h.PostHoliday)
	app.Delete("/api/holidays/:id", h.DeleteHoliday)
	app.Post("/api/assign", h.PostAssignGone)
}

// PostAssignGone keeps the pre-scheduler endpoint answering with a pointer
// to its replacement.
func (h *Handler) PostAssignGone(c *fiber.Ctx) error {
	return c.Status(http.StatusGone).JSON(api.ErrorResponse{
		Error: "スケジューラー API に統合されました。/api/schedule を利用してください。",
	})
}
