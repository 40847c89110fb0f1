package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
)

func holidayFixture(t *testing.T) (HolidayService, *fakeHolidayStore, *models.Classroom) {
	t.Helper()
	classroom := &models.Classroom{
		ID:       uuid.New(),
		Grade:    7,
		Section:  "A",
		IsActive: true,
	}
	store := &fakeHolidayStore{}
	return NewHolidayService(store, newFakeClassroomStore(classroom)), store, classroom
}

func TestCreateHolidayGlobal(t *testing.T) {
	svc, store, _ := holidayFixture(t)

	holiday, err := svc.CreateHoliday(context.Background(), &dto.CreateHolidayRequest{
		Date:       "2026-06-15",
		Name:       "Ujian Akhir Semester",
		Category:   "UAS",
		ApplyToAll: boolPtr(true),
	}, 1)
	if err != nil {
		t.Fatalf("CreateHoliday() error = %v", err)
	}
	if !holiday.ApplyToAll {
		t.Error("CreateHoliday() ApplyToAll = false, want true")
	}
	if holiday.Category != models.HolidayUAS {
		t.Errorf("CreateHoliday() Category = %s, want UAS", holiday.Category)
	}
	if len(store.holidays) != 1 {
		t.Errorf("CreateHoliday() stored %d holidays, want 1", len(store.holidays))
	}
}

func TestCreateHolidayScoped(t *testing.T) {
	svc, _, classroom := holidayFixture(t)

	holiday, err := svc.CreateHoliday(context.Background(), &dto.CreateHolidayRequest{
		Date:         "2026-03-20",
		Name:         "Pesantren Kilat",
		Category:     "PESANTREN",
		ApplyToAll:   boolPtr(false),
		ClassroomIDs: []string{classroom.ID.String()},
	}, 1)
	if err != nil {
		t.Fatalf("CreateHoliday() error = %v", err)
	}
	if !holiday.AppliesTo(classroom.ID) {
		t.Error("CreateHoliday() scoped holiday should apply to the listed classroom")
	}
	if holiday.AppliesTo(uuid.New()) {
		t.Error("CreateHoliday() scoped holiday should not apply to other classrooms")
	}
}

func TestCreateHolidayValidation(t *testing.T) {
	svc, _, classroom := holidayFixture(t)

	tests := []struct {
		name    string
		req     *dto.CreateHolidayRequest
		wantErr error
	}{
		{
			name: "global with classroom list",
			req: &dto.CreateHolidayRequest{
				Date:         "2026-06-15",
				Name:         "Libur",
				Category:     "LAINNYA",
				ApplyToAll:   boolPtr(true),
				ClassroomIDs: []string{classroom.ID.String()},
			},
			wantErr: apperrors.ErrHolidayClassroomConflict,
		},
		{
			name: "scoped without classroom list",
			req: &dto.CreateHolidayRequest{
				Date:       "2026-06-15",
				Name:       "Libur",
				Category:   "LAINNYA",
				ApplyToAll: boolPtr(false),
			},
			wantErr: apperrors.ErrHolidayClassroomConflict,
		},
		{
			name: "unknown category",
			req: &dto.CreateHolidayRequest{
				Date:       "2026-06-15",
				Name:       "Libur",
				Category:   "CUTI",
				ApplyToAll: boolPtr(true),
			},
			wantErr: apperrors.ErrInvalidHolidayCategory,
		},
		{
			name: "malformed date",
			req: &dto.CreateHolidayRequest{
				Date:       "15/06/2026",
				Name:       "Libur",
				Category:   "LAINNYA",
				ApplyToAll: boolPtr(true),
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "unknown classroom",
			req: &dto.CreateHolidayRequest{
				Date:         "2026-06-15",
				Name:         "Libur",
				Category:     "LAINNYA",
				ApplyToAll:   boolPtr(false),
				ClassroomIDs: []string{uuid.New().String()},
			},
			wantErr: apperrors.ErrClassroomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateHoliday(context.Background(), tt.req, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateHoliday() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateHoliday(t *testing.T) {
	svc, store, _ := holidayFixture(t)
	existing := &models.Holiday{
		ID:         uuid.New(),
		Date:       time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		Name:       "Libur",
		Category:   models.HolidayLainnya,
		ApplyToAll: true,
		CreatedBy:  1,
	}
	store.holidays = append(store.holidays, existing)

	updated, err := svc.UpdateHoliday(context.Background(), existing.ID, &dto.UpdateHolidayRequest{
		Date:       "2026-06-16",
		Name:       "Libur Sekolah",
		Category:   "LAINNYA",
		ApplyToAll: boolPtr(true),
	}, 2)
	if err != nil {
		t.Fatalf("UpdateHoliday() error = %v", err)
	}
	if updated.Name != "Libur Sekolah" {
		t.Errorf("UpdateHoliday() Name = %q, want %q", updated.Name, "Libur Sekolah")
	}
	if updated.UpdatedBy != 2 {
		t.Errorf("UpdateHoliday() UpdatedBy = %d, want 2", updated.UpdatedBy)
	}
	if got := updated.Date.Format("2006-01-02"); got != "2026-06-16" {
		t.Errorf("UpdateHoliday() Date = %s, want 2026-06-16", got)
	}
}

func TestDeleteHolidayNotFound(t *testing.T) {
	svc, _, _ := holidayFixture(t)

	err := svc.DeleteHoliday(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrHolidayNotFound) {
		t.Errorf("DeleteHoliday() error = %v, want %v", err, apperrors.ErrHolidayNotFound)
	}
}

func TestIsHoliday(t *testing.T) {
	svc, store, classroom := holidayFixture(t)
	store.holidays = append(store.holidays, &models.Holiday{
		ID:           uuid.New(),
		Date:         time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Name:         "Pesantren Kilat",
		Category:     models.HolidayPesantren,
		ClassroomIDs: []uuid.UUID{classroom.ID},
	})

	day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	got, err := svc.IsHoliday(context.Background(), day, classroom.ID)
	if err != nil {
		t.Fatalf("IsHoliday() error = %v", err)
	}
	if !got {
		t.Error("IsHoliday() = false for a scoped holiday on its classroom, want true")
	}

	got, err = svc.IsHoliday(context.Background(), day, uuid.New())
	if err != nil {
		t.Fatalf("IsHoliday() error = %v", err)
	}
	if got {
		t.Error("IsHoliday() = true for an unrelated classroom, want false")
	}
}
