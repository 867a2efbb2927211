package models

import "time"

// Audit event types.
const (
	EventRegister      = "REGISTER"
	EventLogin         = "LOGIN"
	EventStudentCreate = "STUDENT_CREATE"
	EventStudentUpdate = "STUDENT_UPDATE"
	EventStudentDelete = "STUDENT_DELETE"
)

// AuditEvent is a single append-only log entry recording who did what.
type AuditEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Actor       string    `json:"actor"` // acting username; empty for anonymous flows
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
