package models

import (
	"time"

	"github.com/google/uuid"
)

// Actor types. Brand and influencer actors match the rbac role names; system
// marks changes made by background jobs.
const (
	ActorTypeBrand      = "brand"
	ActorTypeInfluencer = "influencer"
	ActorTypeSystem     = "system"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"`
	ActorUserID *uuid.UUID `json:"actor_user_id,omitempty"`
	ActorType   string     `json:"actor_type"`
	Action      string     `json:"action"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	Meta        any        `json:"meta,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
