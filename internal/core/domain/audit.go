package domain

import "time"

// AuditEvent records one successful mutating operation by an authenticated
// actor. Events are written asynchronously; losing one is logged but never
// fails the request that produced it.
type AuditEvent struct {
	ID            string    `json:"id" bson:"_id"`
	ActorID       string    `json:"actor_id" bson:"actor_id"`
	ActorUsername string    `json:"actor_username" bson:"actor_username"`
	ActorRole     Role      `json:"actor_role" bson:"actor_role"`
	Action        string    `json:"action" bson:"action"`
	Entity        string    `json:"entity" bson:"entity"`
	EntityID      string    `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	RecordedAt    time.Time `json:"recorded_at" bson:"recorded_at"`
}
