package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// Project is one row of the influencer's unified workflow view. It flattens
// invites and applications into a single list keyed by a composite id, so the
// client never has to merge the two engagement tracks itself.
type Project struct {
	ProjectID        string    `json:"project_id"`
	Type             string    `json:"type"` // invitation or application
	CampaignID       uuid.UUID `json:"campaign_id"`
	CampaignName     string    `json:"campaign_name"`
	CampaignBrief    string    `json:"campaign_brief"`
	CampaignBudget   float64   `json:"campaign_budget"`
	Status           string    `json:"status"`
	SubmissionStatus *string   `json:"submission_status,omitempty"`
}

const (
	ProjectTypeInvitation  = "invitation"
	ProjectTypeApplication = "application"
)

type ProjectService struct {
	inviteRepo      *repositories.InviteRepo
	applicationRepo *repositories.ApplicationRepo
	submissionRepo  *repositories.SubmissionRepo
	log             *zap.Logger
}

func NewProjectService(
	inviteRepo *repositories.InviteRepo,
	applicationRepo *repositories.ApplicationRepo,
	submissionRepo *repositories.SubmissionRepo,
	log *zap.Logger,
) *ProjectService {
	return &ProjectService{
		inviteRepo:      inviteRepo,
		applicationRepo: applicationRepo,
		submissionRepo:  submissionRepo,
		log:             log,
	}
}

// ListProjects returns the influencer's combined engagement view: every
// invite, then every application that has not yet been promoted into an
// invite. Each track keeps its own newest-first ordering.
func (s *ProjectService) ListProjects(ctx context.Context, influencerID uuid.UUID) ([]Project, error) {
	invites, err := s.inviteRepo.ListByInfluencerWithCampaign(ctx, influencerID)
	if err != nil {
		return nil, err
	}

	inviteIDs := make([]uuid.UUID, len(invites))
	for i, inv := range invites {
		inviteIDs[i] = inv.ID
	}
	subStatuses, err := s.submissionRepo.LatestStatusByInvites(ctx, inviteIDs)
	if err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.ListByInfluencerWithCampaign(ctx, influencerID)
	if err != nil {
		return nil, err
	}

	return assembleProjects(invites, subStatuses, apps), nil
}

// assembleProjects merges the two engagement tracks. Approved applications
// are dropped because approval created an invite that already represents the
// engagement; listing both would show the same project twice.
func assembleProjects(
	invites []models.InviteWithCampaign,
	subStatuses map[uuid.UUID]string,
	apps []models.ApplicationWithCampaign,
) []Project {
	projects := make([]Project, 0, len(invites)+len(apps))

	for _, inv := range invites {
		p := Project{
			ProjectID:      fmt.Sprintf("invite_%s", inv.ID),
			Type:           ProjectTypeInvitation,
			CampaignID:     inv.CampaignID,
			CampaignName:   inv.CampaignName,
			CampaignBrief:  inv.CampaignBrief,
			CampaignBudget: inv.CampaignBudget,
			Status:         inv.Status,
		}
		if status, ok := subStatuses[inv.ID]; ok {
			p.SubmissionStatus = &status
		}
		projects = append(projects, p)
	}

	for _, app := range apps {
		if app.Status == models.ApplicationStatusApproved {
			continue
		}
		projects = append(projects, Project{
			ProjectID:      fmt.Sprintf("app_%s", app.ID),
			Type:           ProjectTypeApplication,
			CampaignID:     app.CampaignID,
			CampaignName:   app.CampaignName,
			CampaignBrief:  app.CampaignBrief,
			CampaignBudget: app.CampaignBudget,
			Status:         app.Status,
		})
	}

	return projects
}

// ListInvitations returns only the influencer's invites with campaign info.
func (s *ProjectService) ListInvitations(ctx context.Context, influencerID uuid.UUID) ([]models.InviteWithCampaign, error) {
	return s.inviteRepo.ListByInfluencerWithCampaign(ctx, influencerID)
}
