package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"presensia/internal/app/models"
	"presensia/internal/db"
	"presensia/internal/pkg/apperrors"
)

// HolidayRepository persists holiday dates and their classroom scoping.
type HolidayRepository struct {
	db *pgxpool.Pool
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{
		db: db,
	}
}

// Create inserts a holiday together with its classroom links in one
// transaction.
func (r *HolidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO holidays (id, date, name, category, apply_to_all, description, created_at, updated_at, created_by, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), $7, $7)
			RETURNING created_at, updated_at
		`, holiday.ID, holiday.Date, holiday.Name, holiday.Category, holiday.ApplyToAll,
			holiday.Description, holiday.CreatedBy,
		).Scan(&holiday.CreatedAt, &holiday.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating holiday: %w", err)
		}
		return replaceHolidayClassrooms(ctx, tx, holiday.ID, holiday.ClassroomIDs)
	})
}

// Update rewrites a holiday and replaces its classroom links.
func (r *HolidayRepository) Update(ctx context.Context, holiday *models.Holiday) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE holidays
			SET date = $1, name = $2, category = $3, apply_to_all = $4, description = $5,
			    updated_at = NOW(), updated_by = $6
			WHERE id = $7
		`, holiday.Date, holiday.Name, holiday.Category, holiday.ApplyToAll,
			holiday.Description, holiday.UpdatedBy, holiday.ID)
		if err != nil {
			return fmt.Errorf("error updating holiday: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrHolidayNotFound
		}
		return replaceHolidayClassrooms(ctx, tx, holiday.ID, holiday.ClassroomIDs)
	})
}

// Delete removes a holiday; classroom links go with it via cascade.
func (r *HolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHolidayNotFound
	}
	return nil
}

// GetByID returns one holiday with its classroom ids.
func (r *HolidayRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Holiday, error) {
	var h models.Holiday
	err := r.db.QueryRow(ctx, `
		SELECT id, date, name, category, apply_to_all, description, created_at, updated_at, created_by, updated_by
		FROM holidays
		WHERE id = $1
	`, id).Scan(&h.ID, &h.Date, &h.Name, &h.Category, &h.ApplyToAll, &h.Description,
		&h.CreatedAt, &h.UpdatedAt, &h.CreatedBy, &h.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("error getting holiday: %w", err)
	}

	if err := r.attachClassroomIDs(ctx, []*models.Holiday{&h}); err != nil {
		return nil, err
	}
	return &h, nil
}

// GetRange returns holidays with date in [start, end], newest first.
func (r *HolidayRepository) GetRange(ctx context.Context, start, end time.Time) ([]*models.Holiday, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, date, name, category, apply_to_all, description, created_at, updated_at, created_by, updated_by
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing holidays: %w", err)
	}
	defer rows.Close()

	holidays, err := scanHolidays(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachClassroomIDs(ctx, holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// GetRangeForClassroom returns holidays in [start, end] that apply to the
// classroom, either globally or by explicit link.
func (r *HolidayRepository) GetRangeForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) ([]*models.Holiday, error) {
	rows, err := r.db.Query(ctx, `
		SELECT h.id, h.date, h.name, h.category, h.apply_to_all, h.description, h.created_at, h.updated_at, h.created_by, h.updated_by
		FROM holidays h
		WHERE h.date BETWEEN $1 AND $2
		  AND (h.apply_to_all OR EXISTS (
			SELECT 1 FROM holiday_classrooms hc
			WHERE hc.holiday_id = h.id AND hc.classroom_id = $3
		  ))
		ORDER BY h.date DESC
	`, start, end, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error listing classroom holidays: %w", err)
	}
	defer rows.Close()

	holidays, err := scanHolidays(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachClassroomIDs(ctx, holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// ExistsOnDate reports whether the date is a holiday for the classroom.
func (r *HolidayRepository) ExistsOnDate(ctx context.Context, date time.Time, classroomID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM holidays h
			WHERE h.date = $1
			  AND (h.apply_to_all OR EXISTS (
				SELECT 1 FROM holiday_classrooms hc
				WHERE hc.holiday_id = h.id AND hc.classroom_id = $2
			  ))
		)
	`, date, classroomID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking holiday: %w", err)
	}
	return exists, nil
}

// HolidayDatesForClassroom returns the set of holiday dates in [start, end]
// applying to the classroom, keyed by UTC midnight.
func (r *HolidayRepository) HolidayDatesForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) (map[time.Time]bool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT h.date
		FROM holidays h
		WHERE h.date BETWEEN $1 AND $2
		  AND (h.apply_to_all OR EXISTS (
			SELECT 1 FROM holiday_classrooms hc
			WHERE hc.holiday_id = h.id AND hc.classroom_id = $3
		  ))
	`, start, end, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error listing holiday dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[time.Time]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("error scanning holiday date: %w", err)
		}
		dates[d.UTC().Truncate(24*time.Hour)] = true
	}
	return dates, rows.Err()
}

func scanHolidays(rows pgx.Rows) ([]*models.Holiday, error) {
	var holidays []*models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Category, &h.ApplyToAll, &h.Description,
			&h.CreatedAt, &h.UpdatedAt, &h.CreatedBy, &h.UpdatedBy); err != nil {
			return nil, fmt.Errorf("error scanning holiday: %w", err)
		}
		holidays = append(holidays, &h)
	}
	return holidays, rows.Err()
}

// attachClassroomIDs fills ClassroomIDs for scoped holidays in one query.
func (r *HolidayRepository) attachClassroomIDs(ctx context.Context, holidays []*models.Holiday) error {
	byID := make(map[uuid.UUID]*models.Holiday)
	var ids []uuid.UUID
	for _, h := range holidays {
		if !h.ApplyToAll {
			byID[h.ID] = h
			ids = append(ids, h.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT holiday_id, classroom_id
		FROM holiday_classrooms
		WHERE holiday_id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("error loading holiday classrooms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var holidayID, classroomID uuid.UUID
		if err := rows.Scan(&holidayID, &classroomID); err != nil {
			return fmt.Errorf("error scanning holiday classroom: %w", err)
		}
		if h, ok := byID[holidayID]; ok {
			h.ClassroomIDs = append(h.ClassroomIDs, classroomID)
		}
	}
	return rows.Err()
}

func replaceHolidayClassrooms(ctx context.Context, tx pgx.Tx, holidayID uuid.UUID, classroomIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM holiday_classrooms WHERE holiday_id = $1`, holidayID); err != nil {
		return fmt.Errorf("error clearing holiday classrooms: %w", err)
	}
	for _, classroomID := range classroomIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO holiday_classrooms (holiday_id, classroom_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, holidayID, classroomID); err != nil {
			return fmt.Errorf("error linking holiday classroom: %w", err)
		}
	}
	return nil
}
