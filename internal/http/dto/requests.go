package dto

import (
	"fmt"
	"strconv"
)

type RegisterBrandRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInfluencerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateCampaignRequest struct {
	Name                string  `json:"name"`
	Goal                *string `json:"goal,omitempty"`
	TargetAudienceNotes *string `json:"target_audience_notes,omitempty"`
	TargetLocation      *string `json:"target_location,omitempty"`
	Brief               string  `json:"brief"`
	Budget              any     `json:"budget"` // number or numeric string
	IsPublic            bool    `json:"is_public"`
}

type UpdateCampaignRequest struct {
	Name                *string `json:"name,omitempty"`
	Goal                *string `json:"goal,omitempty"`
	TargetAudienceNotes *string `json:"target_audience_notes,omitempty"`
	TargetLocation      *string `json:"target_location,omitempty"`
	Brief               *string `json:"brief,omitempty"`
	Budget              any     `json:"budget,omitempty"`
	Status              *string `json:"status,omitempty"`
	IsPublic            *bool   `json:"is_public,omitempty"`
}

type UpdateProfileRequest struct {
	Name                *string  `json:"name,omitempty"`
	Location            *string  `json:"location,omitempty"`
	Keywords            *string  `json:"keywords,omitempty"`
	ProfileURL          *string  `json:"profile_url,omitempty"`
	Niche               *string  `json:"niche,omitempty"`
	EngagementRate      *float64 `json:"engagement_rate,omitempty"`
	AudienceAgeRange    *string  `json:"audience_age_range,omitempty"`
	AudienceGenderSplit *string  `json:"audience_gender_split,omitempty"`
}

type RefreshStatsRequest struct {
	ProfileURL string `json:"profile_url"`
}

type CreateInviteRequest struct {
	CampaignID   string `json:"campaign_id"`
	InfluencerID string `json:"influencer_id"`
}

type CreateApplicationRequest struct {
	CampaignID string `json:"campaign_id"`
}

type CreateSubmissionRequest struct {
	CampaignID string `json:"campaign_id"`
	ContentURL string `json:"content_url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CoerceFloat accepts the numeric encodings clients actually send for money
// fields: JSON numbers, numeric strings, and absent values.
func CoerceFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}
