package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/events"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
)

// EngagementService drives the invite, application and submission state
// machines. Every status change is validated against the transition tables in
// models, audited, and published to the engagement event stream.
type EngagementService struct {
	campaignRepo    *repositories.CampaignRepo
	influencerRepo  *repositories.InfluencerRepo
	inviteRepo      *repositories.InviteRepo
	applicationRepo *repositories.ApplicationRepo
	submissionRepo  *repositories.SubmissionRepo
	auditRepo       *repositories.AuditRepo
	publisher       events.Publisher
	log             *zap.Logger
}

func NewEngagementService(
	campaignRepo *repositories.CampaignRepo,
	influencerRepo *repositories.InfluencerRepo,
	inviteRepo *repositories.InviteRepo,
	applicationRepo *repositories.ApplicationRepo,
	submissionRepo *repositories.SubmissionRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *EngagementService {
	return &EngagementService{
		campaignRepo:    campaignRepo,
		influencerRepo:  influencerRepo,
		inviteRepo:      inviteRepo,
		applicationRepo: applicationRepo,
		submissionRepo:  submissionRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		log:             log,
	}
}

func (s *EngagementService) publish(ctx context.Context, eventType string, payload map[string]any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamEngagement, events.Event{Type: eventType, Payload: payload}); err != nil {
		s.log.Warn("publish event failed", zap.String("type", eventType), zap.Error(err))
	}
}

func (s *EngagementService) audit(ctx context.Context, entry models.AuditLog) {
	if err := s.auditRepo.Log(ctx, entry); err != nil {
		s.log.Warn("audit write failed", zap.String("action", entry.Action), zap.Error(err))
	}
}

func (s *EngagementService) ownedCampaign(ctx context.Context, campaignID, brandID uuid.UUID) (*models.Campaign, error) {
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
	return c, nil
}

// CreateInvite sends a campaign invite to an influencer. Sending to a pair
// that already holds an invite returns the existing one unchanged, so a
// double-click or a retry never produces duplicates. The second return value
// reports whether a new invite was created.
func (s *EngagementService) CreateInvite(ctx context.Context, brandID, campaignID, influencerID uuid.UUID) (*models.Invite, bool, error) {
	if _, err := s.ownedCampaign(ctx, campaignID, brandID); err != nil {
		return nil, false, err
	}
	if _, err := s.influencerRepo.GetByID(ctx, influencerID); err != nil {
		if repositories.IsNotFound(err) {
			return nil, false, apperr.NotFoundf("influencer not found")
		}
		return nil, false, err
	}

	if existing, err := s.inviteRepo.GetByPair(ctx, campaignID, influencerID); err == nil {
		return existing, false, nil
	} else if !repositories.IsNotFound(err) {
		return nil, false, err
	}

	inv := &models.Invite{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       models.InviteStatusPending,
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		if repositories.IsUniqueViolation(err) {
			// Lost a race with a concurrent create for the same pair.
			existing, gerr := s.inviteRepo.GetByPair(ctx, campaignID, influencerID)
			if gerr != nil {
				return nil, false, gerr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	s.audit(ctx, models.AuditLog{
		ActorUserID: &brandID,
		ActorType:   models.ActorTypeBrand,
		Action:      "invite_created",
		EntityType:  "invite",
		EntityID:    &inv.ID,
		Meta:        map[string]any{"campaign_id": campaignID, "influencer_id": influencerID},
	})
	s.publish(ctx, events.EventInviteCreated, map[string]any{
		"invite_id":     inv.ID,
		"campaign_id":   campaignID,
		"influencer_id": influencerID,
	})

	return inv, true, nil
}

// UpdateInviteStatus lets the invited influencer accept or decline. Only
// transitions allowed by the invite state machine go through.
func (s *EngagementService) UpdateInviteStatus(ctx context.Context, influencerID, inviteID uuid.UUID, status string) (*models.Invite, error) {
	inv, err := s.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("invite not found")
		}
		return nil, err
	}
	if inv.InfluencerID != influencerID {
		return nil, apperr.NotFoundf("invite not found")
	}

	if !models.IsValidInviteTransition(inv.Status, status) {
		return nil, apperr.Invalidf("cannot change invite from %q to %q", inv.Status, status)
	}

	if err := s.inviteRepo.UpdateStatus(ctx, inv.ID, status); err != nil {
		return nil, err
	}
	from := inv.Status
	inv.Status = status

	s.audit(ctx, models.AuditLog{
		ActorUserID: &influencerID,
		ActorType:   models.ActorTypeInfluencer,
		Action:      "invite_status_changed",
		EntityType:  "invite",
		EntityID:    &inv.ID,
		Meta:        map[string]any{"from": from, "to": status},
	})
	s.publish(ctx, events.EventInviteStatusChanged, map[string]any{
		"invite_id":   inv.ID,
		"campaign_id": inv.CampaignID,
		"from":        from,
		"to":          status,
	})

	return inv, nil
}

// CreateApplication records an influencer applying to a campaign. Duplicate
// applications to the same campaign are rejected.
func (s *EngagementService) CreateApplication(ctx context.Context, influencerID, campaignID uuid.UUID) (*models.Application, error) {
	if _, err := s.campaignRepo.GetByID(ctx, campaignID); err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("campaign not found")
		}
		return nil, err
	}

	if _, err := s.applicationRepo.GetByPair(ctx, campaignID, influencerID); err == nil {
		return nil, apperr.Conflictf("you have already applied to this campaign")
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	app := &models.Application{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Status:       models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflictf("you have already applied to this campaign")
		}
		return nil, err
	}

	s.audit(ctx, models.AuditLog{
		ActorUserID: &influencerID,
		ActorType:   models.ActorTypeInfluencer,
		Action:      "application_submitted",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"campaign_id": campaignID},
	})
	s.publish(ctx, events.EventApplicationSubmitted, map[string]any{
		"application_id": app.ID,
		"campaign_id":    campaignID,
		"influencer_id":  influencerID,
	})

	return app, nil
}

// ApplicationDecision is the result of a brand reviewing an application.
// When the application is approved, InviteID points at the accepted invite
// the approval produced or found.
type ApplicationDecision struct {
	Application   *models.Application `json:"application"`
	InviteID      *uuid.UUID          `json:"invite_id,omitempty"`
	InviteCreated bool                `json:"invite_created"`
}

// UpdateApplicationStatus applies a brand's decision. Approval also promotes
// the application into an accepted invite in the same transaction, so the
// influencer can submit content immediately. If an invite for the pair
// already exists it is left untouched and reported back.
func (s *EngagementService) UpdateApplicationStatus(ctx context.Context, brandID, applicationID uuid.UUID, status string) (*ApplicationDecision, error) {
	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("application not found")
		}
		return nil, err
	}
	if _, err := s.ownedCampaign(ctx, app.CampaignID, brandID); err != nil {
		return nil, apperr.NotFoundf("application not found")
	}

	if !models.IsValidApplicationTransition(app.Status, status) {
		return nil, apperr.Invalidf("cannot change application from %q to %q", app.Status, status)
	}

	from := app.Status
	decision := &ApplicationDecision{Application: app}

	if status == models.ApplicationStatusApproved {
		inviteID, created, err := s.applicationRepo.ApproveAndEnsureInvite(ctx, app)
		if err != nil {
			return nil, err
		}
		decision.InviteID = &inviteID
		decision.InviteCreated = created

		if created {
			s.audit(ctx, models.AuditLog{
				ActorUserID: &brandID,
				ActorType:   models.ActorTypeBrand,
				Action:      "invite_created",
				EntityType:  "invite",
				EntityID:    &inviteID,
				Meta:        map[string]any{"source": "application_approval", "application_id": app.ID},
			})
			s.publish(ctx, events.EventInviteCreated, map[string]any{
				"invite_id":     inviteID,
				"campaign_id":   app.CampaignID,
				"influencer_id": app.InfluencerID,
				"source":        "application_approval",
			})
		}
	} else {
		if err := s.applicationRepo.UpdateStatus(ctx, app.ID, status); err != nil {
			return nil, err
		}
	}
	app.Status = status

	s.audit(ctx, models.AuditLog{
		ActorUserID: &brandID,
		ActorType:   models.ActorTypeBrand,
		Action:      "application_status_changed",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"from": from, "to": status},
	})
	s.publish(ctx, events.EventApplicationStatusChanged, map[string]any{
		"application_id": app.ID,
		"campaign_id":    app.CampaignID,
		"from":           from,
		"to":             status,
	})

	return decision, nil
}

// CreateSubmission attaches deliverable content to the influencer's accepted
// invite for the campaign. Without an accepted invite there is nothing to
// submit against.
func (s *EngagementService) CreateSubmission(ctx context.Context, influencerID, campaignID uuid.UUID, contentURL string) (*models.Submission, error) {
	if contentURL == "" {
		return nil, apperr.Invalidf("content_url is required")
	}

	inv, err := s.inviteRepo.GetAcceptedByPair(ctx, campaignID, influencerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("no accepted invite for this campaign")
		}
		return nil, err
	}

	sub := &models.Submission{
		InviteID:   inv.ID,
		ContentURL: contentURL,
		Status:     models.SubmissionStatusPendingReview,
	}
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.audit(ctx, models.AuditLog{
		ActorUserID: &influencerID,
		ActorType:   models.ActorTypeInfluencer,
		Action:      "submission_created",
		EntityType:  "submission",
		EntityID:    &sub.ID,
		Meta:        map[string]any{"invite_id": inv.ID, "campaign_id": campaignID},
	})
	s.publish(ctx, events.EventSubmissionCreated, map[string]any{
		"submission_id": sub.ID,
		"invite_id":     inv.ID,
		"campaign_id":   campaignID,
	})

	return sub, nil
}

// UpdateSubmissionStatus applies a brand's review verdict to a submission on
// one of its campaigns.
func (s *EngagementService) UpdateSubmissionStatus(ctx context.Context, brandID, submissionID uuid.UUID, status string) (*models.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperr.NotFoundf("submission not found")
		}
		return nil, err
	}

	inv, err := s.inviteRepo.GetByID(ctx, sub.InviteID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCampaign(ctx, inv.CampaignID, brandID); err != nil {
		return nil, apperr.NotFoundf("submission not found")
	}

	if !models.IsValidSubmissionTransition(sub.Status, status) {
		return nil, apperr.Invalidf("cannot change submission from %q to %q", sub.Status, status)
	}

	if err := s.submissionRepo.UpdateStatus(ctx, sub.ID, status); err != nil {
		return nil, err
	}
	from := sub.Status
	sub.Status = status

	s.audit(ctx, models.AuditLog{
		ActorUserID: &brandID,
		ActorType:   models.ActorTypeBrand,
		Action:      "submission_status_changed",
		EntityType:  "submission",
		EntityID:    &sub.ID,
		Meta:        map[string]any{"from": from, "to": status},
	})
	s.publish(ctx, events.EventSubmissionStatusChanged, map[string]any{
		"submission_id": sub.ID,
		"invite_id":     inv.ID,
		"campaign_id":   inv.CampaignID,
		"from":          from,
		"to":            status,
	})

	return sub, nil
}
