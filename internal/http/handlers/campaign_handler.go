package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
)

type CampaignHandler struct {
	campaigns *services.CampaignService
	matcher   *services.MatchService
	log       *zap.Logger
}

func NewCampaignHandler(campaigns *services.CampaignService, matcher *services.MatchService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, matcher: matcher, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	budget, err := dto.CoerceFloat(req.Budget)
	if err != nil {
		return badRequest(c, "budget must be numeric")
	}

	brandID := middleware.GetUserID(c)
	campaign, err := h.campaigns.Create(c.Context(), brandID, services.CreateCampaignInput{
		Name:                req.Name,
		Goal:                req.Goal,
		TargetAudienceNotes: req.TargetAudienceNotes,
		TargetLocation:      req.TargetLocation,
		Brief:               req.Brief,
		Budget:              budget,
		IsPublic:            req.IsPublic,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	brandID := middleware.GetUserID(c)

	filter := repositories.CampaignFilter{Limit: 20}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	campaigns, err := h.campaigns.List(c.Context(), brandID, filter)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

// ListPublicCampaigns is the influencer-facing open exchange.
func (h *CampaignHandler) ListPublicCampaigns(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	campaigns, err := h.campaigns.ListPublic(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	details, err := h.campaigns.Details(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: details})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	input := services.UpdateCampaignInput{
		Name:                req.Name,
		Goal:                req.Goal,
		TargetAudienceNotes: req.TargetAudienceNotes,
		TargetLocation:      req.TargetLocation,
		Brief:               req.Brief,
		Status:              req.Status,
		IsPublic:            req.IsPublic,
	}
	if req.Budget != nil {
		budget, err := dto.CoerceFloat(req.Budget)
		if err != nil {
			return badRequest(c, "budget must be numeric")
		}
		input.Budget = &budget
	}

	campaign, err := h.campaigns.Update(c.Context(), id, middleware.GetUserID(c), input)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

// GetMatches ranks influencers in the campaign's target location by keyword
// overlap with the brief.
func (h *CampaignHandler) GetMatches(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	matches, err := h.matcher.FindMatches(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: matches})
}

func (h *CampaignHandler) ListApplications(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid campaign id")
	}

	apps, err := h.campaigns.Applications(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: apps})
}
