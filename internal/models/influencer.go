package models

import (
	"time"

	"github.com/google/uuid"
)

type Influencer struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Followers    int       `json:"followers"`
	Location     string    `json:"location"`
	// Comma-delimited keyword list, e.g. "food, coffee, restaurants".
	Keywords string `json:"keywords"`
	// Public social profile page the stats fetcher scrapes for followers.
	ProfileURL          *string    `json:"profile_url,omitempty"`
	Niche               *string    `json:"niche,omitempty"`
	EngagementRate      *float64   `json:"engagement_rate,omitempty"`
	AudienceAgeRange    *string    `json:"audience_age_range,omitempty"`
	AudienceGenderSplit *string    `json:"audience_gender_split,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// MatchResult is one ranked entry returned by campaign matching.
type MatchResult struct {
	Influencer Influencer `json:"influencer"`
	MatchScore int        `json:"match_score"`
}
