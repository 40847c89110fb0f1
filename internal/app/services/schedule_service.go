package services

import (
	"context"
	"fmt"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/logger"
)

// ScheduleStore is the persistence seam for the weekday schedule.
type ScheduleStore interface {
	GetAll(ctx context.Context) ([]*models.DaySchedule, error)
	GetByWeekday(ctx context.Context, weekday int) (*models.DaySchedule, error)
	Update(ctx context.Context, weekday int, slotCount int, isSchoolDay bool, updatedBy int64) (*models.DaySchedule, error)
}

// ScheduleService manages the per-weekday lesson-slot configuration.
type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context) ([]*models.DaySchedule, error)
	GetDaySchedule(ctx context.Context, weekday int) (*models.DaySchedule, error)
	UpdateDaySchedule(ctx context.Context, weekday int, req *dto.UpdateScheduleRequest, updatedBy int64) (*models.DaySchedule, error)
}

type scheduleService struct {
	scheduleStore ScheduleStore
}

// NewScheduleService creates a new schedule service
func NewScheduleService(scheduleStore ScheduleStore) ScheduleService {
	return &scheduleService{
		scheduleStore: scheduleStore,
	}
}

// GetWeeklySchedule returns all 7 weekday entries ordered Monday first.
func (s *scheduleService) GetWeeklySchedule(ctx context.Context) ([]*models.DaySchedule, error) {
	return s.scheduleStore.GetAll(ctx)
}

// GetDaySchedule returns the entry for one weekday.
func (s *scheduleService) GetDaySchedule(ctx context.Context, weekday int) (*models.DaySchedule, error) {
	if weekday < 0 || weekday > 6 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidWeekday,
			fmt.Sprintf("weekday %d is out of range", weekday))
	}
	return s.scheduleStore.GetByWeekday(ctx, weekday)
}

// UpdateDaySchedule changes the slot count and school-day flag for one
// weekday. The change applies to subsequent reads only; existing
// attendance records keep the shape they were validated against.
func (s *scheduleService) UpdateDaySchedule(ctx context.Context, weekday int, req *dto.UpdateScheduleRequest, updatedBy int64) (*models.DaySchedule, error) {
	if weekday < 0 || weekday > 6 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidWeekday,
			fmt.Sprintf("weekday %d is out of range", weekday))
	}
	if req.SlotCount < models.MinSlotCount || req.SlotCount > models.MaxSlotCount {
		return nil, apperrors.NewCustomError(apperrors.ErrSlotCountOutOfRange,
			fmt.Sprintf("slot count %d is out of range", req.SlotCount)).
			WithDetails(map[string]interface{}{"slotCount": req.SlotCount})
	}

	updated, err := s.scheduleStore.Update(ctx, weekday, req.SlotCount, *req.IsSchoolDay, updatedBy)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("weekday", weekday).
		Int("slotCount", updated.SlotCount).
		Bool("isSchoolDay", updated.IsSchoolDay).
		Int64("updatedBy", updatedBy).
		Msg("Day schedule updated")
	return updated, nil
}
