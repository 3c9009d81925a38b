// internal/domain/models/auditevent.go
package models

import "time"

// AuditEvent records a sign-in attempt or an admin change to club content.
type AuditEvent struct {
	ID            int64             `bson:"_id" json:"id"`
	Timestamp     time.Time         `bson:"timestamp" json:"timestamp"`
	Category      string            `bson:"category" json:"category"`
	EventType     string            `bson:"event_type" json:"eventType"`
	ActorID       int64             `bson:"actor_id,omitempty" json:"actorId,omitempty"`
	Entity        string            `bson:"entity,omitempty" json:"entity,omitempty"`
	EntityID      int64             `bson:"entity_id,omitempty" json:"entityId,omitempty"`
	IP            string            `bson:"ip" json:"ip"`
	UserAgent     string            `bson:"user_agent,omitempty" json:"userAgent,omitempty"`
	Success       bool              `bson:"success" json:"success"`
	FailureReason string            `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`
	Details       map[string]string `bson:"details,omitempty" json:"details,omitempty"`
}
