package handlers_fiber

import (
	"net/http"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/api"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetProjects returns the merged project view with source metadata.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	projects, meta, err := h.uc.Projects(c.Context())
	if err != nil {
		h.log.Errorw("failed to get projects", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Projects []api.Project   `json:"projects"`
		Meta     api.ProjectMeta `json:"meta"`
	}{
		Projects: mapper.ToAPIProjectList(projects),
		Meta:     mapper.ToAPIProjectMeta(*meta),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostCustomProject creates a user-defined project with members.
func (h *Handler) PostCustomProject(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msgInvalidBody})
	}

	project, meta, err := h.uc.AddProject(c.Context(), body.Name, body.Members)
	if err != nil {
		h.log.Infow("failed to add custom project", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Project api.Project     `json:"project"`
		Meta    api.ProjectMeta `json:"meta"`
	}{
		Project: mapper.ToAPIProject(*project),
		Meta:    mapper.ToAPIProjectMeta(*meta),
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PostCustomMembers layers extra members onto an existing project.
func (h *Handler) PostCustomMembers(c *fiber.Ctx) error {
	var body api.AddMembersRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: msgInvalidBody})
	}

	project, added, meta, err := h.uc.AddMembers(c.Context(), c.Params("id"), body.Members)
	if err != nil {
		h.log.Infow("failed to add custom members", "error", err.Error(), "project_id", c.Params("id"))
		return writeError(c, err)
	}

	resp := struct {
		Project      api.Project     `json:"project"`
		AddedMembers []api.Member    `json:"addedMembers"`
		Meta         api.ProjectMeta `json:"meta"`
	}{
		Project:      mapper.ToAPIProject(*project),
		AddedMembers: mapper.ToAPIMemberList(added),
		Meta:         mapper.ToAPIProjectMeta(*meta),
	}
	return c.Status(http.StatusCreated).JSON(resp)
}
