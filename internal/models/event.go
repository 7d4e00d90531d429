package models

// AuditEvent is published to Kafka on account and recipe mutations
type AuditEvent struct {
	EventID   string `json:"event_id"`            // Unique event ID
	Timestamp int64  `json:"timestamp"`           // Unix timestamp
	UserID    string `json:"user_id"`             // Acting user
	Operation string `json:"operation"`           // e.g. "user.registered", "recipe.created"
	EntityID  string `json:"entity_id,omitempty"` // Affected entity, if any
}
