package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/helpers"
	"presensia/internal/pkg/logger"
)

// HolidayStore is the persistence seam for holidays.
type HolidayStore interface {
	Create(ctx context.Context, holiday *models.Holiday) error
	Update(ctx context.Context, holiday *models.Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Holiday, error)
	GetRange(ctx context.Context, start, end time.Time) ([]*models.Holiday, error)
	GetRangeForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) ([]*models.Holiday, error)
	ExistsOnDate(ctx context.Context, date time.Time, classroomID uuid.UUID) (bool, error)
}

// ClassroomLookup resolves classroom references during validation.
type ClassroomLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error)
}

// HolidayService manages the holiday calendar. Any calendar date can be a
// holiday; holidays are advisory for attendance submission and exclusive
// for missing-day detection.
type HolidayService interface {
	CreateHoliday(ctx context.Context, req *dto.CreateHolidayRequest, createdBy int64) (*models.Holiday, error)
	UpdateHoliday(ctx context.Context, id uuid.UUID, req *dto.UpdateHolidayRequest, updatedBy int64) (*models.Holiday, error)
	DeleteHoliday(ctx context.Context, id uuid.UUID) error
	GetHoliday(ctx context.Context, id uuid.UUID) (*models.Holiday, error)
	ListHolidays(ctx context.Context, start, end time.Time) ([]*models.Holiday, error)
	ListHolidaysForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) ([]*models.Holiday, error)
	IsHoliday(ctx context.Context, date time.Time, classroomID uuid.UUID) (bool, error)
}

type holidayService struct {
	holidayStore   HolidayStore
	classroomStore ClassroomLookup
}

// NewHolidayService creates a new holiday service
func NewHolidayService(holidayStore HolidayStore, classroomStore ClassroomLookup) HolidayService {
	return &holidayService{
		holidayStore:   holidayStore,
		classroomStore: classroomStore,
	}
}

// CreateHoliday registers a new holiday, global or classroom-scoped.
func (s *holidayService) CreateHoliday(ctx context.Context, req *dto.CreateHolidayRequest, createdBy int64) (*models.Holiday, error) {
	date, category, classroomIDs, err := s.validateHolidayInput(ctx, req.Date, req.Category, *req.ApplyToAll, req.ClassroomIDs)
	if err != nil {
		return nil, err
	}

	holiday := &models.Holiday{
		ID:           uuid.New(),
		Date:         date,
		Name:         req.Name,
		Category:     category,
		ApplyToAll:   *req.ApplyToAll,
		Description:  req.Description,
		CreatedBy:    createdBy,
		UpdatedBy:    createdBy,
		ClassroomIDs: classroomIDs,
	}
	if err := s.holidayStore.Create(ctx, holiday); err != nil {
		return nil, err
	}

	logger.Info().
		Str("holidayId", holiday.ID.String()).
		Str("date", holiday.Date.Format(helpers.DateLayout)).
		Str("category", string(holiday.Category)).
		Bool("applyToAll", holiday.ApplyToAll).
		Msg("Holiday created")
	return holiday, nil
}

// UpdateHoliday rewrites an existing holiday.
func (s *holidayService) UpdateHoliday(ctx context.Context, id uuid.UUID, req *dto.UpdateHolidayRequest, updatedBy int64) (*models.Holiday, error) {
	holiday, err := s.holidayStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, category, classroomIDs, err := s.validateHolidayInput(ctx, req.Date, req.Category, *req.ApplyToAll, req.ClassroomIDs)
	if err != nil {
		return nil, err
	}

	holiday.Date = date
	holiday.Name = req.Name
	holiday.Category = category
	holiday.ApplyToAll = *req.ApplyToAll
	holiday.Description = req.Description
	holiday.UpdatedBy = updatedBy
	holiday.ClassroomIDs = classroomIDs

	if err := s.holidayStore.Update(ctx, holiday); err != nil {
		return nil, err
	}
	return holiday, nil
}

// DeleteHoliday removes a holiday. Past attendance is untouched; the date
// simply stops being excluded from missing-day detection.
func (s *holidayService) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	if err := s.holidayStore.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("holidayId", id.String()).Msg("Holiday deleted")
	return nil
}

// GetHoliday returns one holiday by id.
func (s *holidayService) GetHoliday(ctx context.Context, id uuid.UUID) (*models.Holiday, error) {
	return s.holidayStore.GetByID(ctx, id)
}

// ListHolidays returns all holidays in [start, end], newest first.
func (s *holidayService) ListHolidays(ctx context.Context, start, end time.Time) ([]*models.Holiday, error) {
	return s.holidayStore.GetRange(ctx, helpers.TruncateToDate(start), helpers.TruncateToDate(end))
}

// ListHolidaysForClassroom returns holidays in [start, end] applying to
// the classroom.
func (s *holidayService) ListHolidaysForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) ([]*models.Holiday, error) {
	return s.holidayStore.GetRangeForClassroom(ctx, helpers.TruncateToDate(start), helpers.TruncateToDate(end), classroomID)
}

// IsHoliday reports whether the date is a holiday for the classroom.
func (s *holidayService) IsHoliday(ctx context.Context, date time.Time, classroomID uuid.UUID) (bool, error) {
	return s.holidayStore.ExistsOnDate(ctx, helpers.TruncateToDate(date), classroomID)
}

// validateHolidayInput checks date format, category and classroom scoping.
// A global holiday must not list classrooms; a scoped one must list at
// least one, and each must exist.
func (s *holidayService) validateHolidayInput(ctx context.Context, dateStr, categoryStr string, applyToAll bool, classroomIDStrs []string) (time.Time, models.HolidayCategory, []uuid.UUID, error) {
	date, err := time.Parse(helpers.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, "", nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("date %q must be formatted as YYYY-MM-DD", dateStr))
	}
	date = helpers.TruncateToDate(date)

	category := models.HolidayCategory(categoryStr)
	if !category.Valid() {
		return time.Time{}, "", nil, apperrors.NewCustomError(apperrors.ErrInvalidHolidayCategory,
			fmt.Sprintf("category %q is not recognized", categoryStr))
	}

	if applyToAll && len(classroomIDStrs) > 0 {
		return time.Time{}, "", nil, apperrors.NewCustomError(apperrors.ErrHolidayClassroomConflict,
			"a holiday applying to all classrooms must not list classroom ids")
	}
	if !applyToAll && len(classroomIDStrs) == 0 {
		return time.Time{}, "", nil, apperrors.NewCustomError(apperrors.ErrHolidayClassroomConflict,
			"a classroom-scoped holiday must list at least one classroom")
	}

	classroomIDs := make([]uuid.UUID, 0, len(classroomIDStrs))
	for _, idStr := range classroomIDStrs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return time.Time{}, "", nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("classroom id %q is not a valid uuid", idStr))
		}
		if _, err := s.classroomStore.GetByID(ctx, id); err != nil {
			return time.Time{}, "", nil, err
		}
		classroomIDs = append(classroomIDs, id)
	}
	return date, category, classroomIDs, nil
}
