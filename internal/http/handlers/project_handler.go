package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/services"
)

type ProjectHandler struct {
	projects *services.ProjectService
	log      *zap.Logger
}

func NewProjectHandler(projects *services.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, log: log}
}

// ListProjects returns the influencer's combined invite and application view.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projects.ListProjects(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: projects})
}

func (h *ProjectHandler) ListInvitations(c *fiber.Ctx) error {
	invites, err := h.projects.ListInvitations(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: invites})
}
