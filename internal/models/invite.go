package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite statuses
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusDeclined = "declined"
)

// Valid invite transitions: from -> []to. Accepted and declined are terminal.
var ValidInviteTransitions = map[string][]string{
	InviteStatusPending:  {InviteStatusAccepted, InviteStatusDeclined},
	InviteStatusAccepted: {},
	InviteStatusDeclined: {},
}

func IsValidInviteTransition(from, to string) bool {
	return transitionAllowed(ValidInviteTransitions, from, to)
}

type Invite struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaign_id"`
	InfluencerID uuid.UUID `json:"influencer_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InviteWithCampaign embeds Invite and adds campaign info to avoid N+1 queries.
type InviteWithCampaign struct {
	Invite
	CampaignName   string  `json:"campaign_name"`
	CampaignBrief  string  `json:"campaign_brief"`
	CampaignBudget float64 `json:"campaign_budget"`
}

// InviteWithInfluencer embeds Invite and adds influencer and latest-submission
// info for the brand-facing campaign detail view.
type InviteWithInfluencer struct {
	Invite
	InfluencerName      string     `json:"influencer_name"`
	InfluencerFollowers int        `json:"influencer_followers"`
	SubmissionID        *uuid.UUID `json:"submission_id,omitempty"`
	SubmissionURL       *string    `json:"submission_url,omitempty"`
	SubmissionStatus    *string    `json:"submission_status,omitempty"`
}

func transitionAllowed(table map[string][]string, from, to string) bool {
	allowed, ok := table[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
