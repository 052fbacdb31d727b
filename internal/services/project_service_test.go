package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/influencer-marketplace/backend/internal/models"
)

func invite(id uuid.UUID, status, campaignName string) models.InviteWithCampaign {
	return models.InviteWithCampaign{
		Invite: models.Invite{
			ID:         id,
			CampaignID: uuid.New(),
			Status:     status,
		},
		CampaignName:   campaignName,
		CampaignBrief:  "brief",
		CampaignBudget: 1000,
	}
}

func application(status, campaignName string) models.ApplicationWithCampaign {
	return models.ApplicationWithCampaign{
		Application: models.Application{
			ID:         uuid.New(),
			CampaignID: uuid.New(),
			Status:     status,
		},
		CampaignName:   campaignName,
		CampaignBrief:  "brief",
		CampaignBudget: 500,
	}
}

func TestAssembleProjects(t *testing.T) {
	invID := uuid.New()
	invites := []models.InviteWithCampaign{
		invite(invID, models.InviteStatusAccepted, "Summer Launch"),
		invite(uuid.New(), models.InviteStatusPending, "Winter Promo"),
	}
	subStatuses := map[uuid.UUID]string{
		invID: models.SubmissionStatusPendingReview,
	}
	apps := []models.ApplicationWithCampaign{
		application(models.ApplicationStatusPending, "Spring Sale"),
		application(models.ApplicationStatusApproved, "Summer Launch"),
		application(models.ApplicationStatusRejected, "Fall Drop"),
	}

	projects := assembleProjects(invites, subStatuses, apps)

	// 2 invites plus 2 applications; the approved application is suppressed
	// because its invite already covers the engagement.
	if len(projects) != 4 {
		t.Fatalf("got %d projects, want 4", len(projects))
	}

	if projects[0].Type != ProjectTypeInvitation || projects[1].Type != ProjectTypeInvitation {
		t.Errorf("invitations must come first, got types %q, %q", projects[0].Type, projects[1].Type)
	}

	first := projects[0]
	if first.ProjectID != "invite_"+invID.String() {
		t.Errorf("ProjectID = %q, want invite_%s", first.ProjectID, invID)
	}
	if first.SubmissionStatus == nil || *first.SubmissionStatus != models.SubmissionStatusPendingReview {
		t.Errorf("SubmissionStatus = %v, want %q", first.SubmissionStatus, models.SubmissionStatusPendingReview)
	}
	if projects[1].SubmissionStatus != nil {
		t.Errorf("invite without submissions should have nil SubmissionStatus, got %q", *projects[1].SubmissionStatus)
	}

	for _, p := range projects {
		if p.Type == ProjectTypeApplication && p.Status == models.ApplicationStatusApproved {
			t.Errorf("approved application leaked into projects: %+v", p)
		}
	}
	if projects[2].CampaignName != "Spring Sale" || projects[3].CampaignName != "Fall Drop" {
		t.Errorf("application ordering changed: %q, %q", projects[2].CampaignName, projects[3].CampaignName)
	}
}

func TestAssembleProjectsEmpty(t *testing.T) {
	projects := assembleProjects(nil, map[uuid.UUID]string{}, nil)
	if len(projects) != 0 {
		t.Fatalf("got %d projects, want 0", len(projects))
	}
}
