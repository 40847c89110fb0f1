package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"presensia/internal/app/models"
	"presensia/internal/pkg/apperrors"
)

// ScheduleRepository holds the 7-row weekday schedule. The table is tiny
// and read on every submission, so it is kept in memory and written
// through to the database on update. All reads go through this one seam.
type ScheduleRepository struct {
	db *pgxpool.Pool

	mu    sync.RWMutex
	cache map[int]models.DaySchedule
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db:    db,
		cache: make(map[int]models.DaySchedule),
	}
}

// Load reads all weekday rows into the in-memory table. It must run at
// startup, after seeding; anything other than exactly 7 rows is a fatal
// configuration error.
func (r *ScheduleRepository) Load(ctx context.Context) error {
	rows, err := r.db.Query(ctx, `
		SELECT weekday, day_name, slot_count, is_school_day, updated_at, updated_by
		FROM day_schedules
		ORDER BY weekday
	`)
	if err != nil {
		return fmt.Errorf("error loading day schedules: %w", err)
	}
	defer rows.Close()

	loaded := make(map[int]models.DaySchedule)
	for rows.Next() {
		var s models.DaySchedule
		if err := rows.Scan(&s.Weekday, &s.DayName, &s.SlotCount, &s.IsSchoolDay, &s.UpdatedAt, &s.UpdatedBy); err != nil {
			return fmt.Errorf("error scanning day schedule: %w", err)
		}
		loaded[s.Weekday] = s
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(loaded) != 7 {
		return fmt.Errorf("%w: expected 7 weekday rows, found %d", apperrors.ErrScheduleNotSeeded, len(loaded))
	}

	r.mu.Lock()
	r.cache = loaded
	r.mu.Unlock()
	return nil
}

// Create inserts a weekday row if it does not exist yet. Used by seeding.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.DaySchedule) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO day_schedules (weekday, day_name, slot_count, is_school_day, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (weekday) DO NOTHING
	`, schedule.Weekday, schedule.DayName, schedule.SlotCount, schedule.IsSchoolDay)
	if err != nil {
		return fmt.Errorf("error creating day schedule: %w", err)
	}
	return nil
}

// GetByWeekday returns the schedule entry for weekday 0..6.
func (r *ScheduleRepository) GetByWeekday(ctx context.Context, weekday int) (*models.DaySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.cache) == 0 {
		return nil, apperrors.ErrScheduleNotSeeded
	}
	s, ok := r.cache[weekday]
	if !ok {
		return nil, fmt.Errorf("%w: weekday %d missing", apperrors.ErrScheduleNotSeeded, weekday)
	}
	return &s, nil
}

// GetAll returns all 7 schedule entries ordered by weekday.
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.DaySchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.cache) == 0 {
		return nil, apperrors.ErrScheduleNotSeeded
	}

	schedules := make([]*models.DaySchedule, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		s, ok := r.cache[weekday]
		if !ok {
			return nil, fmt.Errorf("%w: weekday %d missing", apperrors.ErrScheduleNotSeeded, weekday)
		}
		schedules = append(schedules, &s)
	}
	return schedules, nil
}

// Update persists new slot count / school-day flag for one weekday and
// refreshes the in-memory table. Takes effect immediately for subsequent
// reads; historical attendance records are never rewritten.
func (r *ScheduleRepository) Update(ctx context.Context, weekday int, slotCount int, isSchoolDay bool, updatedBy int64) (*models.DaySchedule, error) {
	var s models.DaySchedule
	err := r.db.QueryRow(ctx, `
		UPDATE day_schedules
		SET slot_count = $1, is_school_day = $2, updated_at = NOW(), updated_by = $3
		WHERE weekday = $4
		RETURNING weekday, day_name, slot_count, is_school_day, updated_at, updated_by
	`, slotCount, isSchoolDay, updatedBy, weekday).Scan(
		&s.Weekday, &s.DayName, &s.SlotCount, &s.IsSchoolDay, &s.UpdatedAt, &s.UpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating day schedule: %w", err)
	}

	r.mu.Lock()
	r.cache[s.Weekday] = s
	r.mu.Unlock()
	return &s, nil
}
