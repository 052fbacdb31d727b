package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/profilestats"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

type ProfileService struct {
	influencerRepo *repositories.InfluencerRepo
	auditRepo      *repositories.AuditRepo
	statsFetcher   *profilestats.Fetcher
	log            *zap.Logger
}

func NewProfileService(
	influencerRepo *repositories.InfluencerRepo,
	auditRepo *repositories.AuditRepo,
	statsFetcher *profilestats.Fetcher,
	log *zap.Logger,
) *ProfileService {
	return &ProfileService{
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		statsFetcher:   statsFetcher,
		log:            log,
	}
}

func (s *ProfileService) Get(ctx context.Context, influencerID uuid.UUID) (*models.Influencer, error) {
	inf, err := s.influencerRepo.GetByID(ctx, influencerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("profile not found")
		}
		return nil, err
	}
	return inf, nil
}

type UpdateProfileInput struct {
	Name                *string
	Location            *string
	Keywords            *string
	ProfileURL          *string
	Niche               *string
	EngagementRate      *float64
	AudienceAgeRange    *string
	AudienceGenderSplit *string
}

func (s *ProfileService) Update(ctx context.Context, influencerID uuid.UUID, input UpdateProfileInput) (*models.Influencer, error) {
	inf, err := s.Get(ctx, influencerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperr.Invalidf("name must not be empty")
		}
		inf.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		inf.Location = strings.TrimSpace(*input.Location)
	}
	if input.Keywords != nil {
		inf.Keywords = *input.Keywords
	}
	if input.ProfileURL != nil {
		inf.ProfileURL = input.ProfileURL
	}
	if input.Niche != nil {
		inf.Niche = input.Niche
	}
	if input.EngagementRate != nil {
		if *input.EngagementRate < 0 {
			return nil, apperr.Invalidf("engagement_rate must not be negative")
		}
		inf.EngagementRate = input.EngagementRate
	}
	if input.AudienceAgeRange != nil {
		inf.AudienceAgeRange = input.AudienceAgeRange
	}
	if input.AudienceGenderSplit != nil {
		inf.AudienceGenderSplit = input.AudienceGenderSplit
	}

	if err := s.influencerRepo.UpdateProfile(ctx, inf); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &influencerID,
		ActorType:   models.ActorTypeInfluencer,
		Action:      "profile_updated",
		EntityType:  "influencer",
		EntityID:    &influencerID,
	})

	return inf, nil
}

// RefreshStats scrapes a public profile page and overwrites the stored
// follower count with whatever the page reports. An empty profileURL falls
// back to the URL saved on the profile.
func (s *ProfileService) RefreshStats(ctx context.Context, influencerID uuid.UUID, profileURL string) (*models.Influencer, error) {
	inf, err := s.Get(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(profileURL) == "" {
		if inf.ProfileURL == nil || *inf.ProfileURL == "" {
			return nil, apperr.Invalidf("profile_url is required")
		}
		profileURL = *inf.ProfileURL
	}

	stats, err := s.statsFetcher.Fetch(ctx, profileURL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidRequest, err, "could not fetch profile stats")
	}
	if stats.Followers == nil {
		return nil, apperr.Invalidf("no follower count found on page")
	}

	if err := s.influencerRepo.UpdateFollowers(ctx, influencerID, *stats.Followers); err != nil {
		return nil, err
	}
	inf.Followers = *stats.Followers

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &influencerID,
		ActorType:   models.ActorTypeInfluencer,
		Action:      "stats_refreshed",
		EntityType:  "influencer",
		EntityID:    &influencerID,
		Meta:        map[string]any{"followers": *stats.Followers},
	})

	return inf, nil
}

// Search is the brand-facing influencer directory.
func (s *ProfileService) Search(ctx context.Context, f repositories.InfluencerFilter) ([]models.Influencer, error) {
	return s.influencerRepo.Search(ctx, f)
}
