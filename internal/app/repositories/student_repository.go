package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"presensia/internal/app/models"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/dberrors"
)

// StudentRepository persists roster entries.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (id, student_number, nisn, name, classroom_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, student.ID, student.StudentID, student.NISN, student.Name, student.ClassroomID, student.IsActive,
	).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// Update rewrites a student's mutable fields.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET student_number = $1, nisn = $2, name = $3, classroom_id = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`, student.StudentID, student.NISN, student.Name, student.ClassroomID, student.IsActive, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// GetByID returns one student with the classroom relation populated.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var s models.Student
	var c models.Classroom
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.student_number, s.nisn, s.name, s.classroom_id, s.is_active, s.created_at, s.updated_at,
		       c.id, c.name, c.grade, c.section, c.academic_year, c.is_active, c.created_at, c.updated_at
		FROM students s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE s.id = $1
	`, id).Scan(&s.ID, &s.StudentID, &s.NISN, &s.Name, &s.ClassroomID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.Name, &c.Grade, &c.Section, &c.AcademicYear, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	s.Classroom = &c
	return &s, nil
}

// ActiveByClassroom returns the classroom's active roster ordered by name.
func (r *StudentRepository) ActiveByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_number, nisn, name, classroom_id, is_active, created_at, updated_at
		FROM students
		WHERE classroom_id = $1 AND is_active
		ORDER BY name
	`, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error listing classroom roster: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListByClassroom returns the full roster including inactive students.
func (r *StudentRepository) ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_number, nisn, name, classroom_id, is_active, created_at, updated_at
		FROM students
		WHERE classroom_id = $1
		ORDER BY name
	`, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error listing classroom students: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.StudentID, &s.NISN, &s.Name, &s.ClassroomID,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, &s)
	}
	return students, rows.Err()
}
