package service

import (
	"context"
	"time"

	"studentregistry/internal/models"
	"studentregistry/internal/repository"
)

type Authorization interface {
	Register(username, password, role string) (int, error)
	Login(username, password string) (string, models.Role, error)
	ParseToken(accessToken string) (*Claims, error)
}

// Students exposes record CRUD with input validation and audit trail.
// actor is the acting username, recorded with each mutation.
type Students interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id int) (models.Student, error)
	Create(ctx context.Context, actor string, in StudentInput) (int, error)
	Update(ctx context.Context, actor string, id int, in StudentInput) error
	Delete(ctx context.Context, actor string, id int) error
}

// AuditLog exposes the append-only event trail with filtering access.
type AuditLog interface {
	List(ctx context.Context, f AuditFilter) ([]models.AuditEvent, error)
}

// Retention runs the background loop that prunes old audit events.
// Stop via context cancellation in main() for graceful shutdown.
type Retention interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Students
	AuditLog
	Retention
	Authorization
}

// Config carries the runtime knobs the services need from main.
type Config struct {
	SigningKey     string        // HMAC secret for JWTs
	AuditRetention time.Duration // how long audit events are kept
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Students:      NewStudentService(repos.Students, repos.Audit),
		AuditLog:      NewAuditService(repos.Audit),
		Retention:     NewRetentionService(repos.Audit, cfg.AuditRetention),
		Authorization: NewAuthService(repos.Users, repos.Audit, cfg.SigningKey),
	}
}
