package service

import (
	"context"
	"errors"
	"strings"

	"studentregistry/internal/models"
	"studentregistry/internal/repository"
)

// Validation errors for student input.
var (
	ErrMissingFields = errors.New("name, email and major are required")
	ErrInvalidGPA    = errors.New("gpa must be between 0.0 and 4.0")
)

const (
	minGPA = 0.0
	maxGPA = 4.0
)

// StudentService validates input, delegates CRUD to the repository and
// appends an audit event after each successful mutation.
type StudentService struct {
	students repository.Students
	audit    repository.Audit
}

func NewStudentService(students repository.Students, audit repository.Audit) *StudentService {
	return &StudentService{students: students, audit: audit}
}

// validateInput enforces presence of the text fields and the GPA range.
func validateInput(in StudentInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Major) == "" {
		return ErrMissingFields
	}
	if in.GPA < minGPA || in.GPA > maxGPA {
		return ErrInvalidGPA
	}
	return nil
}

func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.List(ctx)
}

func (s *StudentService) Get(ctx context.Context, id int) (models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Create inserts a new record and returns the generated id.
func (s *StudentService) Create(ctx context.Context, actor string, in StudentInput) (int, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}

	id, err := s.students.Create(ctx, models.Student{
		Name:  in.Name,
		Email: in.Email,
		Major: in.Major,
		GPA:   in.GPA,
	})
	if err != nil {
		return 0, err
	}

	s.recordEvent(ctx, models.EventStudentCreate, actor, "Student added",
		map[string]any{"id": id, "name": in.Name})
	return id, nil
}

// Update replaces every field of the record (full replace semantics).
func (s *StudentService) Update(ctx context.Context, actor string, id int, in StudentInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	err := s.students.Update(ctx, models.Student{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Major: in.Major,
		GPA:   in.GPA,
	})
	if err != nil {
		return err
	}

	s.recordEvent(ctx, models.EventStudentUpdate, actor, "Student updated",
		map[string]any{"id": id, "name": in.Name})
	return nil
}

// Delete removes the record with the given id.
func (s *StudentService) Delete(ctx context.Context, actor string, id int) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	s.recordEvent(ctx, models.EventStudentDelete, actor, "Student deleted",
		map[string]any{"id": id})
	return nil
}

// recordEvent appends an audit entry; trail failures never fail the mutation.
func (s *StudentService) recordEvent(ctx context.Context, typ, actor, desc string, meta map[string]any) {
	_ = s.audit.Append(ctx, models.AuditEvent{
		Type:        typ,
		Actor:       actor,
		Description: desc,
		Metadata:    meta,
	})
}
