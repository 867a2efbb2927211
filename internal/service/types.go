package service

import "time"

// StudentInput is the full set of writable student fields.
// Both create and update take all of them (full replace, not a patch).
type StudentInput struct {
	Name  string
	Email string
	Major string
	GPA   float64
}

// AuditFilter supports trail filtering by time range and event type.
type AuditFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "REGISTER", "LOGIN", "STUDENT_CREATE", "STUDENT_UPDATE", "STUDENT_DELETE"
}
