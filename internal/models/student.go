package models

// Student is a managed student record. It has no link to a User account:
// a "student" role login and a student row are unrelated entities.
type Student struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Major string  `json:"major"`
	GPA   float64 `json:"gpa"` // 0.0–4.0
}
