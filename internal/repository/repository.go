package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"studentregistry/internal/models"
	"studentregistry/internal/repository/db"
)

// ErrStudentNotFound is returned when an id does not match any student row.
var ErrStudentNotFound = errors.New("student not found")

type Users interface {
	Create(username, hash string, role models.Role) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type Students interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int) (models.Student, error)
	Create(ctx context.Context, s models.Student) (int, error)
	Update(ctx context.Context, s models.Student) error
	Delete(ctx context.Context, id int) error
}

type Audit interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Repository struct {
	Users    Users
	Students Students
	Audit    Audit
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(conn),
		Students: NewStudentRepository(conn),
		Audit:    NewAuditRepository(conn),
	}
}

// InitDB re-exports the db package bootstrap so main only imports repository.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
