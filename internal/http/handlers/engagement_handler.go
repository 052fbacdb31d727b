package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/services"
)

type EngagementHandler struct {
	engagements *services.EngagementService
	log         *zap.Logger
}

func NewEngagementHandler(engagements *services.EngagementService, log *zap.Logger) *EngagementHandler {
	return &EngagementHandler{engagements: engagements, log: log}
}

func (h *EngagementHandler) CreateInvite(c *fiber.Ctx) error {
	var req dto.CreateInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return badRequest(c, "invalid campaign_id")
	}
	influencerID, err := uuid.Parse(req.InfluencerID)
	if err != nil {
		return badRequest(c, "invalid influencer_id")
	}

	invite, created, err := h.engagements.CreateInvite(c.Context(), middleware.GetUserID(c), campaignID, influencerID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SuccessResponse{OK: true, Data: invite})
}

func (h *EngagementHandler) UpdateInvite(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid invite id")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	invite, err := h.engagements.UpdateInviteStatus(c.Context(), middleware.GetUserID(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: invite})
}

func (h *EngagementHandler) CreateApplication(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return badRequest(c, "invalid campaign_id")
	}

	app, err := h.engagements.CreateApplication(c.Context(), middleware.GetUserID(c), campaignID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: app})
}

func (h *EngagementHandler) UpdateApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid application id")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	decision, err := h.engagements.UpdateApplicationStatus(c.Context(), middleware.GetUserID(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: decision})
}

func (h *EngagementHandler) CreateSubmission(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return badRequest(c, "invalid campaign_id")
	}

	sub, err := h.engagements.CreateSubmission(c.Context(), middleware.GetUserID(c), campaignID, req.ContentURL)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: sub})
}

func (h *EngagementHandler) UpdateSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid submission id")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	sub, err := h.engagements.UpdateSubmissionStatus(c.Context(), middleware.GetUserID(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: sub})
}
