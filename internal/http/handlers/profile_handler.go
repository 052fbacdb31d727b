package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"github.com/influencer-marketplace/backend/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
	log      *zap.Logger
}

func NewProfileHandler(profiles *services.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	inf, err := h.profiles.Get(c.Context(), middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: inf})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	inf, err := h.profiles.Update(c.Context(), middleware.GetUserID(c), services.UpdateProfileInput{
		Name:                req.Name,
		Location:            req.Location,
		Keywords:            req.Keywords,
		ProfileURL:          req.ProfileURL,
		Niche:               req.Niche,
		EngagementRate:      req.EngagementRate,
		AudienceAgeRange:    req.AudienceAgeRange,
		AudienceGenderSplit: req.AudienceGenderSplit,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: inf})
}

func (h *ProfileHandler) RefreshStats(c *fiber.Ctx) error {
	var req dto.RefreshStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	inf, err := h.profiles.RefreshStats(c.Context(), middleware.GetUserID(c), req.ProfileURL)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: inf})
}

// SearchInfluencers is the brand-facing directory with optional filters.
func (h *ProfileHandler) SearchInfluencers(c *fiber.Ctx) error {
	filter := repositories.InfluencerFilter{Limit: 20}

	if v := c.Query("niche"); v != "" {
		filter.Niche = &v
	}
	if v := c.Query("location"); v != "" {
		filter.Location = &v
	}
	if v := c.Query("min_followers"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinFollowers = &n
		}
	}
	if v := c.Query("max_followers"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxFollowers = &n
		}
	}
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

	influencers, err := h.profiles.Search(c.Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: influencers})
}
