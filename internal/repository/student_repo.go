package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studentregistry/internal/models"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

var _ Students = (*StudentRepository)(nil)

const (
	selectStudentsSQL    = `SELECT id, name, email, major, gpa FROM students ORDER BY id`
	selectStudentByIDSQL = `SELECT id, name, email, major, gpa FROM students WHERE id = ?`
	insertStudentSQL     = `INSERT INTO students (name, email, major, gpa) VALUES (?, ?, ?, ?)`
	updateStudentSQL     = `UPDATE students SET name = ?, email = ?, major = ?, gpa = ? WHERE id = ?`
	deleteStudentSQL     = `DELETE FROM students WHERE id = ?`
)

// List returns all students in primary-key order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, selectStudentsSQL)
	if err != nil {
		return nil, fmt.Errorf("select students: %w", err)
	}
	defer rows.Close()

	out := make([]models.Student, 0, 16)
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Major, &s.GPA); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return out, nil
}

// GetByID fetches one student. Returns ErrStudentNotFound if id is absent.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (models.Student, error) {
	var s models.Student
	err := r.db.QueryRowContext(ctx, selectStudentByIDSQL, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Major, &s.GPA)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, fmt.Errorf("select student %d: %w", id, err)
	}
	return s, nil
}

// Create inserts a new student row and returns the generated id.
func (r *StudentRepository) Create(ctx context.Context, s models.Student) (int, error) {
	res, err := r.db.ExecContext(ctx, insertStudentSQL, s.Name, s.Email, s.Major, s.GPA)
	if err != nil {
		return 0, fmt.Errorf("insert student: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for student: %w", err)
	}
	return int(lastID), nil
}

// Update replaces all fields of the row with s.ID. Full replace, not a patch.
func (r *StudentRepository) Update(ctx context.Context, s models.Student) error {
	res, err := r.db.ExecContext(ctx, updateStudentSQL, s.Name, s.Email, s.Major, s.GPA, s.ID)
	if err != nil {
		return fmt.Errorf("update student %d: %w", s.ID, err)
	}
	return requireAffected(res, s.ID)
}

// Delete removes the row with the given id.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteStudentSQL, id)
	if err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	return requireAffected(res, id)
}

// requireAffected maps a zero-row result to ErrStudentNotFound.
func requireAffected(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for student %d: %w", id, err)
	}
	if n == 0 {
		return ErrStudentNotFound
	}
	return nil
}
