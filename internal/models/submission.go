package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission statuses
const (
	SubmissionStatusPendingReview     = "pending_review"
	SubmissionStatusApproved          = "approved"
	SubmissionStatusRevisionRequested = "revision_requested"
)

// Valid submission transitions: from -> []to. A reviewed submission is final.
var ValidSubmissionTransitions = map[string][]string{
	SubmissionStatusPendingReview:     {SubmissionStatusApproved, SubmissionStatusRevisionRequested},
	SubmissionStatusApproved:          {},
	SubmissionStatusRevisionRequested: {},
}

func IsValidSubmissionTransition(from, to string) bool {
	return transitionAllowed(ValidSubmissionTransitions, from, to)
}

type Submission struct {
	ID         uuid.UUID `json:"id"`
	InviteID   uuid.UUID `json:"invite_id"`
	ContentURL string    `json:"content_url"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
