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

// ClassroomRepository persists classrooms.
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
	}
}

// Create inserts a new classroom.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO classrooms (id, name, grade, section, academic_year, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`, classroom.ID, classroom.Name, classroom.Grade, classroom.Section,
		classroom.AcademicYear, classroom.IsActive,
	).Scan(&classroom.CreatedAt, &classroom.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating classroom: %w", err)
	}
	return nil
}

// Update rewrites a classroom's mutable fields.
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE classrooms
		SET name = $1, grade = $2, section = $3, academic_year = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`, classroom.Name, classroom.Grade, classroom.Section, classroom.AcademicYear,
		classroom.IsActive, classroom.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error updating classroom: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}
	return nil
}

// GetByID returns one classroom.
func (r *ClassroomRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error) {
	var c models.Classroom
	err := r.db.QueryRow(ctx, `
		SELECT id, name, grade, section, academic_year, is_active, created_at, updated_at
		FROM classrooms
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Grade, &c.Section, &c.AcademicYear, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error getting classroom: %w", err)
	}
	return &c, nil
}

// GetAll returns classrooms, optionally only active ones, ordered by
// grade then section.
func (r *ClassroomRepository) GetAll(ctx context.Context, activeOnly bool) ([]*models.Classroom, error) {
	query := `
		SELECT id, name, grade, section, academic_year, is_active, created_at, updated_at
		FROM classrooms
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY grade, section`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing classrooms: %w", err)
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		var c models.Classroom
		if err := rows.Scan(&c.ID, &c.Name, &c.Grade, &c.Section, &c.AcademicYear,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning classroom: %w", err)
		}
		classrooms = append(classrooms, &c)
	}
	return classrooms, rows.Err()
}
