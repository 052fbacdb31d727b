package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/matching"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

type MatchService struct {
	campaignRepo   *repositories.CampaignRepo
	influencerRepo *repositories.InfluencerRepo
	log            *zap.Logger
}

func NewMatchService(
	campaignRepo *repositories.CampaignRepo,
	influencerRepo *repositories.InfluencerRepo,
	log *zap.Logger,
) *MatchService {
	return &MatchService{
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
		log:            log,
	}
}

// FindMatches scores influencers in the campaign's target location against the
// campaign brief. Only influencers with at least one keyword overlap are
// returned, strongest match first. Ties keep the candidate ordering from the
// repository, so repeated runs produce the same ranking.
func (s *MatchService) FindMatches(ctx context.Context, campaignID, brandID uuid.UUID) ([]models.MatchResult, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("campaign not found")
		}
		return nil, err
	}
	if c.BrandID != brandID {
		return nil, apperr.NotFoundf("campaign not found")
	}
	if c.TargetLocation == nil || *c.TargetLocation == "" {
		return nil, apperr.Invalidf("campaign has no target location set")
	}

	candidates, err := s.influencerRepo.ListByLocation(ctx, *c.TargetLocation)
	if err != nil {
		return nil, err
	}

	briefTokens := matching.Tokenize(c.Brief)

	results := make([]models.MatchResult, 0, len(candidates))
	for _, inf := range candidates {
		score := matching.Overlap(briefTokens, matching.TokenizeCSV(inf.Keywords))
		if score > 0 {
			results = append(results, models.MatchResult{Influencer: inf, MatchScore: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	s.log.Debug("matching complete",
		zap.String("campaign_id", campaignID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(results)))

	return results, nil
}
