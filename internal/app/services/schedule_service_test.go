package services

import (
	"context"
	"errors"
	"testing"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
)

func boolPtr(b bool) *bool { return &b }

func TestGetWeeklySchedule(t *testing.T) {
	svc := NewScheduleService(defaultWeek())

	week, err := svc.GetWeeklySchedule(context.Background())
	if err != nil {
		t.Fatalf("GetWeeklySchedule() error = %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("GetWeeklySchedule() returned %d entries, want 7", len(week))
	}
	if week[0].DayName != "Senin" || week[6].DayName != "Minggu" {
		t.Errorf("GetWeeklySchedule() order = %s..%s, want Senin..Minggu", week[0].DayName, week[6].DayName)
	}
}

func TestGetDayScheduleInvalidWeekday(t *testing.T) {
	svc := NewScheduleService(defaultWeek())

	for _, weekday := range []int{-1, 7, 100} {
		if _, err := svc.GetDaySchedule(context.Background(), weekday); !errors.Is(err, apperrors.ErrInvalidWeekday) {
			t.Errorf("GetDaySchedule(%d) error = %v, want %v", weekday, err, apperrors.ErrInvalidWeekday)
		}
	}
}

func TestUpdateDaySchedule(t *testing.T) {
	store := defaultWeek()
	svc := NewScheduleService(store)

	updated, err := svc.UpdateDaySchedule(context.Background(), 4, &dto.UpdateScheduleRequest{
		SlotCount:   5,
		IsSchoolDay: boolPtr(true),
	}, 9)
	if err != nil {
		t.Fatalf("UpdateDaySchedule() error = %v", err)
	}
	if updated.SlotCount != 5 || !updated.IsSchoolDay {
		t.Errorf("UpdateDaySchedule() = %+v, want 5 slots on a school day", updated)
	}
	if store.updated == nil || store.updated.Weekday != 4 {
		t.Error("UpdateDaySchedule() did not persist the change")
	}
}

func TestUpdateDayScheduleSlotCountBounds(t *testing.T) {
	svc := NewScheduleService(defaultWeek())

	tests := []struct {
		name      string
		slotCount int
		wantErr   error
	}{
		{name: "zero", slotCount: 0, wantErr: apperrors.ErrSlotCountOutOfRange},
		{name: "negative", slotCount: -3, wantErr: apperrors.ErrSlotCountOutOfRange},
		{name: "too large", slotCount: models.MaxSlotCount + 1, wantErr: apperrors.ErrSlotCountOutOfRange},
		{name: "lower bound", slotCount: models.MinSlotCount, wantErr: nil},
		{name: "upper bound", slotCount: models.MaxSlotCount, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateDaySchedule(context.Background(), 0, &dto.UpdateScheduleRequest{
				SlotCount:   tt.slotCount,
				IsSchoolDay: boolPtr(true),
			}, 1)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("UpdateDaySchedule(slotCount=%d) error = %v, want nil", tt.slotCount, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateDaySchedule(slotCount=%d) error = %v, want %v", tt.slotCount, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateDayScheduleInvalidWeekday(t *testing.T) {
	svc := NewScheduleService(defaultWeek())

	_, err := svc.UpdateDaySchedule(context.Background(), 7, &dto.UpdateScheduleRequest{
		SlotCount:   6,
		IsSchoolDay: boolPtr(true),
	}, 1)
	if !errors.Is(err, apperrors.ErrInvalidWeekday) {
		t.Errorf("UpdateDaySchedule(7) error = %v, want %v", err, apperrors.ErrInvalidWeekday)
	}
}
