package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Valid application transitions: from -> []to.
var ValidApplicationTransitions = map[string][]string{
	ApplicationStatusPending:  {ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusApproved: {},
	ApplicationStatusRejected: {},
}

func IsValidApplicationTransition(from, to string) bool {
	return transitionAllowed(ValidApplicationTransitions, from, to)
}

type Application struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaign_id"`
	InfluencerID uuid.UUID `json:"influencer_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ApplicationWithCampaign embeds Application and adds campaign info.
type ApplicationWithCampaign struct {
	Application
	CampaignName   string  `json:"campaign_name"`
	CampaignBrief  string  `json:"campaign_brief"`
	CampaignBudget float64 `json:"campaign_budget"`
}

// ApplicationWithInfluencer embeds Application and adds influencer info for
// the brand-facing applicant list.
type ApplicationWithInfluencer struct {
	Application
	InfluencerName      string   `json:"influencer_name"`
	InfluencerFollowers int      `json:"influencer_followers"`
	InfluencerNiche     *string  `json:"influencer_niche,omitempty"`
	EngagementRate      *float64 `json:"engagement_rate,omitempty"`
}
