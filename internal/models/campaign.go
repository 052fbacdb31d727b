package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusPlanning  = "planning"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

func IsValidCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusPlanning, CampaignStatusActive, CampaignStatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brand_id"`
	Name    string    `json:"name"`
	// Brief is the free-text content requirements used as matching input.
	Brief string `json:"brief"`
	// Budget is the payment per influencer.
	Budget              float64 `json:"budget"`
	Status              string  `json:"status"`
	Goal                *string `json:"goal,omitempty"`
	TargetAudienceNotes *string `json:"target_audience_notes,omitempty"`
	TargetLocation      *string `json:"target_location,omitempty"`
	// IsPublic exposes the campaign on the open exchange for applications.
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
