package events

import "context"

// Stream carrying all engagement workflow events.
const StreamEngagement = "events:engagement"

// Event types
const (
	EventInviteCreated            = "invite_created"
	EventInviteStatusChanged      = "invite_status_changed"
	EventApplicationSubmitted     = "application_submitted"
	EventApplicationStatusChanged = "application_status_changed"
	EventSubmissionCreated        = "submission_created"
	EventSubmissionStatusChanged  = "submission_status_changed"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
