package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

type CampaignService struct {
	campaignRepo    *repositories.CampaignRepo
	inviteRepo      *repositories.InviteRepo
	applicationRepo *repositories.ApplicationRepo
	auditRepo       *repositories.AuditRepo
	log             *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	inviteRepo *repositories.InviteRepo,
	applicationRepo *repositories.ApplicationRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo:    campaignRepo,
		inviteRepo:      inviteRepo,
		applicationRepo: applicationRepo,
		auditRepo:       auditRepo,
		log:             log,
	}
}

type CreateCampaignInput struct {
	Name                string
	Goal                *string
	TargetAudienceNotes *string
	TargetLocation      *string
	Brief               string
	Budget              float64
	IsPublic            bool
}

// Create records a campaign owned by the authenticated brand. The owner always
// comes from the caller's verified identity.
func (s *CampaignService) Create(ctx context.Context, brandID uuid.UUID, input CreateCampaignInput) (*models.Campaign, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.Invalidf("campaign name is required")
	}
	if strings.TrimSpace(input.Brief) == "" {
		return nil, apperr.Invalidf("campaign brief is required")
	}
	if input.Budget < 0 {
		return nil, apperr.Invalidf("budget must not be negative")
	}

	c := &models.Campaign{
		BrandID:             brandID,
		Name:                input.Name,
		Brief:               input.Brief,
		Budget:              input.Budget,
		Status:              models.CampaignStatusPlanning,
		Goal:                input.Goal,
		TargetAudienceNotes: input.TargetAudienceNotes,
		TargetLocation:      input.TargetLocation,
		IsPublic:            input.IsPublic,
	}
	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &brandID,
		ActorType:   models.ActorTypeBrand,
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return c, nil
}

func (s *CampaignService) getOwned(ctx context.Context, id, brandID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("campaign not found")
		}
		return nil, err
	}
	if c.BrandID != brandID {
		return nil, apperr.NotFoundf("campaign not found")
	}
	return c, nil
}

func (s *CampaignService) GetForBrand(ctx context.Context, id, brandID uuid.UUID) (*models.Campaign, error) {
	return s.getOwned(ctx, id, brandID)
}

func (s *CampaignService) List(ctx context.Context, brandID uuid.UUID, f repositories.CampaignFilter) ([]models.Campaign, error) {
	f.BrandID = &brandID
	return s.campaignRepo.List(ctx, f)
}

// ListPublic returns the open exchange: campaigns any influencer may apply to.
func (s *CampaignService) ListPublic(ctx context.Context, limit, offset int) ([]models.Campaign, error) {
	public := true
	return s.campaignRepo.List(ctx, repositories.CampaignFilter{
		IsPublic: &public,
		Limit:    limit,
		Offset:   offset,
	})
}

type UpdateCampaignInput struct {
	Name                *string
	Goal                *string
	TargetAudienceNotes *string
	TargetLocation      *string
	Brief               *string
	Budget              *float64
	Status              *string
	IsPublic            *bool
}

func (s *CampaignService) Update(ctx context.Context, id, brandID uuid.UUID, input UpdateCampaignInput) (*models.Campaign, error) {
	c, err := s.getOwned(ctx, id, brandID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.IsValidCampaignStatus(*input.Status) {
			return nil, apperr.Invalidf("invalid campaign status %q", *input.Status)
		}
		c.Status = *input.Status
	}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperr.Invalidf("campaign name must not be empty")
		}
		c.Name = *input.Name
	}
	if input.Brief != nil {
		if strings.TrimSpace(*input.Brief) == "" {
			return nil, apperr.Invalidf("campaign brief must not be empty")
		}
		c.Brief = *input.Brief
	}
	if input.Budget != nil {
		if *input.Budget < 0 {
			return nil, apperr.Invalidf("budget must not be negative")
		}
		c.Budget = *input.Budget
	}
	if input.Goal != nil {
		c.Goal = input.Goal
	}
	if input.TargetAudienceNotes != nil {
		c.TargetAudienceNotes = input.TargetAudienceNotes
	}
	if input.TargetLocation != nil {
		c.TargetLocation = input.TargetLocation
	}
	if input.IsPublic != nil {
		c.IsPublic = *input.IsPublic
	}

	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &brandID,
		ActorType:   models.ActorTypeBrand,
		Action:      "campaign_updated",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return c, nil
}

// CampaignDetails is the brand-facing view of a campaign and its invites.
type CampaignDetails struct {
	Campaign models.Campaign               `json:"campaign"`
	Invites  []models.InviteWithInfluencer `json:"invites"`
}

func (s *CampaignService) Details(ctx context.Context, id, brandID uuid.UUID) (*CampaignDetails, error) {
	c, err := s.getOwned(ctx, id, brandID)
	if err != nil {
		return nil, err
	}

	invites, err := s.inviteRepo.ListByCampaignWithInfluencer(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &CampaignDetails{Campaign: *c, Invites: invites}, nil
}

func (s *CampaignService) Applications(ctx context.Context, id, brandID uuid.UUID) ([]models.ApplicationWithInfluencer, error) {
	c, err := s.getOwned(ctx, id, brandID)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.ListByCampaignWithInfluencer(ctx, c.ID)
}
