package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
)

func fullDay(status string, slots int) map[string]string {
	m := make(map[string]string, slots)
	for i := 1; i <= slots; i++ {
		m[strconv.Itoa(i)] = status
	}
	return m
}

func attendanceFixture(t *testing.T) (AttendanceService, *fakeStudentStore, *fakeHolidayStore, *fakeAttendanceStore, *models.Student) {
	t.Helper()
	classroomID := uuid.New()
	student := &models.Student{
		ID:          uuid.New(),
		StudentID:   "2024-001",
		Name:        "Ahmad Fauzi",
		ClassroomID: classroomID,
		IsActive:    true,
	}
	students := newFakeStudentStore(student)
	holidays := &fakeHolidayStore{}
	attendance := newFakeAttendanceStore(students)
	svc := NewAttendanceService(attendance, students, defaultWeek(), holidays)
	return svc, students, holidays, attendance, student
}

func TestSubmitCreatesRecord(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)

	// 2026-02-09 is a Monday with 6 slots
	result, err := svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-09",
		SlotStatuses: fullDay("H", 6),
	}, 1)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.Created {
		t.Error("Submit() Created = false, want true for a first submission")
	}
	if result.Warning != "" {
		t.Errorf("Submit() Warning = %q, want empty", result.Warning)
	}
	if got := result.Record.TotalHadir(); got != 6 {
		t.Errorf("TotalHadir() = %d, want 6", got)
	}
}

func TestSubmitOverwritesExistingRecord(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)
	ctx := context.Background()

	first := &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-09",
		SlotStatuses: fullDay("H", 6),
	}
	if _, err := svc.Submit(ctx, first, 1); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	second := &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-09",
		SlotStatuses: fullDay("A", 6),
	}
	result, err := svc.Submit(ctx, second, 2)
	if err != nil {
		t.Fatalf("Submit() resubmission error = %v", err)
	}
	if result.Created {
		t.Error("Submit() Created = true, want false for a resubmission")
	}

	stored, err := svc.GetRecord(ctx, student.ID, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetRecord() error = %v", err)
	}
	if got := stored.TotalAlpa(); got != 6 {
		t.Errorf("stored TotalAlpa() = %d, want 6 after overwrite", got)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)

	tests := []struct {
		name    string
		req     *dto.SubmitAttendanceRequest
		wantErr error
	}{
		{
			name: "wrong slot count",
			req: &dto.SubmitAttendanceRequest{
				StudentID:    student.ID.String(),
				Date:         "2026-02-09",
				SlotStatuses: fullDay("H", 4),
			},
			wantErr: apperrors.ErrInvalidSlotShape,
		},
		{
			name: "slot key out of range",
			req: &dto.SubmitAttendanceRequest{
				StudentID: student.ID.String(),
				Date:      "2026-02-09",
				SlotStatuses: map[string]string{
					"1": "H", "2": "H", "3": "H", "4": "H", "5": "H", "7": "H",
				},
			},
			wantErr: apperrors.ErrInvalidSlotShape,
		},
		{
			name: "non-numeric slot key",
			req: &dto.SubmitAttendanceRequest{
				StudentID: student.ID.String(),
				Date:      "2026-02-09",
				SlotStatuses: map[string]string{
					"one": "H", "2": "H", "3": "H", "4": "H", "5": "H", "6": "H",
				},
			},
			wantErr: apperrors.ErrInvalidSlotShape,
		},
		{
			// "01" aliases slot 1, so six raw keys would collapse into
			// five stored slots if accepted
			name: "zero-padded key aliasing another slot",
			req: &dto.SubmitAttendanceRequest{
				StudentID: student.ID.String(),
				Date:      "2026-02-09",
				SlotStatuses: map[string]string{
					"01": "S", "1": "H", "2": "H", "3": "H", "4": "H", "5": "H",
				},
			},
			wantErr: apperrors.ErrInvalidSlotShape,
		},
		{
			name: "signed slot key",
			req: &dto.SubmitAttendanceRequest{
				StudentID: student.ID.String(),
				Date:      "2026-02-09",
				SlotStatuses: map[string]string{
					"+1": "H", "2": "H", "3": "H", "4": "H", "5": "H", "6": "H",
				},
			},
			wantErr: apperrors.ErrInvalidSlotShape,
		},
		{
			name: "invalid status letter",
			req: &dto.SubmitAttendanceRequest{
				StudentID: student.ID.String(),
				Date:      "2026-02-09",
				SlotStatuses: map[string]string{
					"1": "H", "2": "H", "3": "X", "4": "H", "5": "H", "6": "H",
				},
			},
			wantErr: apperrors.ErrInvalidStatusValue,
		},
		{
			name: "malformed date",
			req: &dto.SubmitAttendanceRequest{
				StudentID:    student.ID.String(),
				Date:         "09-02-2026",
				SlotStatuses: fullDay("H", 6),
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "malformed student id",
			req: &dto.SubmitAttendanceRequest{
				StudentID:    "not-a-uuid",
				Date:         "2026-02-09",
				SlotStatuses: fullDay("H", 6),
			},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name: "unknown student",
			req: &dto.SubmitAttendanceRequest{
				StudentID:    uuid.New().String(),
				Date:         "2026-02-09",
				SlotStatuses: fullDay("H", 6),
			},
			wantErr: apperrors.ErrStudentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.req, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitRejectsInactiveStudent(t *testing.T) {
	svc, students, _, _, _ := attendanceFixture(t)
	inactive := &models.Student{
		ID:          uuid.New(),
		StudentID:   "2024-099",
		Name:        "Budi Santoso",
		ClassroomID: uuid.New(),
		IsActive:    false,
	}
	students.students[inactive.ID] = inactive

	_, err := svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    inactive.ID.String(),
		Date:         "2026-02-09",
		SlotStatuses: fullDay("H", 6),
	}, 1)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Submit() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestSubmitFridaySlotCount(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)

	// 2026-02-13 is a Friday with 4 slots
	result, err := svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-13",
		SlotStatuses: fullDay("H", 4),
	}, 1)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got := result.Record.SlotStatuses.TotalSlots(); got != 4 {
		t.Errorf("TotalSlots() = %d, want 4", got)
	}

	_, err = svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-13",
		SlotStatuses: fullDay("H", 6),
	}, 1)
	if !errors.Is(err, apperrors.ErrInvalidSlotShape) {
		t.Errorf("Submit() with 6 slots on Friday error = %v, want %v", err, apperrors.ErrInvalidSlotShape)
	}
}

func TestSubmitHolidayWarning(t *testing.T) {
	svc, _, holidays, _, student := attendanceFixture(t)
	holidays.holidays = append(holidays.holidays, &models.Holiday{
		ID:         uuid.New(),
		Date:       time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		Name:       "Ujian Akhir Semester",
		Category:   models.HolidayUAS,
		ApplyToAll: true,
	})

	result, err := svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-09",
		SlotStatuses: fullDay("H", 6),
	}, 1)
	if err != nil {
		t.Fatalf("Submit() on a holiday should succeed, got error %v", err)
	}
	if result.Warning == "" {
		t.Error("Submit() on a holiday should carry a warning")
	}
	if result.Record == nil {
		t.Error("Submit() on a holiday should still store the record")
	}
}

func TestSubmitHolidayOtherClassroomNoWarning(t *testing.T) {
	svc, _, holidays, _, student := attendanceFixture(t)
	holidays.holidays = append(holidays.holidays, &models.Holiday{
		ID:           uuid.New(),
		Date:         time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		Name:         "Pesantren Kilat",
		Category:     models.HolidayPesantren,
		ApplyToAll:   false,
		ClassroomIDs: []uuid.UUID{uuid.New()},
	})

	result, err := svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-09",
		SlotStatuses: fullDay("H", 6),
	}, 1)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Warning != "" {
		t.Errorf("Submit() Warning = %q, want empty when the holiday is scoped elsewhere", result.Warning)
	}
}

func TestSubmitNonSchoolDayWarning(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)

	// 2026-02-15 is a Sunday with zero slots
	result, err := svc.Submit(context.Background(), &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-15",
		SlotStatuses: map[string]string{},
	}, 1)
	if err != nil {
		t.Fatalf("Submit() on a non-school day should succeed, got error %v", err)
	}
	if result.Warning == "" {
		t.Error("Submit() on a non-school day should carry a warning")
	}
}

func TestSubmitBulk(t *testing.T) {
	svc, students, _, _, first := attendanceFixture(t)
	second := &models.Student{
		ID:          uuid.New(),
		StudentID:   "2024-002",
		Name:        "Siti Rahma",
		ClassroomID: first.ClassroomID,
		IsActive:    true,
	}
	students.students[second.ID] = second

	req := &dto.BulkAttendanceRequest{
		Records: []dto.SubmitAttendanceRequest{
			{StudentID: first.ID.String(), Date: "2026-02-09", SlotStatuses: fullDay("H", 6)},
			{StudentID: second.ID.String(), Date: "2026-02-09", SlotStatuses: fullDay("S", 6)},
		},
	}
	result, err := svc.SubmitBulk(context.Background(), req, 1)
	if err != nil {
		t.Fatalf("SubmitBulk() error = %v", err)
	}
	if result.Created != 2 || result.Updated != 0 {
		t.Errorf("SubmitBulk() created/updated = %d/%d, want 2/0", result.Created, result.Updated)
	}
}

func TestSubmitBulkRejectsWholeBatch(t *testing.T) {
	svc, _, _, attendance, student := attendanceFixture(t)

	req := &dto.BulkAttendanceRequest{
		Records: []dto.SubmitAttendanceRequest{
			{StudentID: student.ID.String(), Date: "2026-02-09", SlotStatuses: fullDay("H", 6)},
			{StudentID: student.ID.String(), Date: "2026-02-10", SlotStatuses: fullDay("H", 3)},
		},
	}
	_, err := svc.SubmitBulk(context.Background(), req, 1)
	if !errors.Is(err, apperrors.ErrInvalidSlotShape) {
		t.Fatalf("SubmitBulk() error = %v, want %v", err, apperrors.ErrInvalidSlotShape)
	}
	if len(attendance.records) != 0 {
		t.Errorf("SubmitBulk() stored %d records despite a validation failure, want 0", len(attendance.records))
	}
}

func TestGetRecordUnrecordedDay(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)

	record, err := svc.GetRecord(context.Background(), student.ID, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetRecord() error = %v, want nil for an unrecorded day", err)
	}
	if record != nil {
		t.Errorf("GetRecord() = %+v, want nil", record)
	}
}

func TestMissingDays(t *testing.T) {
	svc, students, holidays, _, student := attendanceFixture(t)
	ctx := context.Background()

	// Two active students in the classroom; only the first ever submits.
	other := &models.Student{
		ID:          uuid.New(),
		StudentID:   "2024-002",
		Name:        "Siti Rahma",
		ClassroomID: student.ClassroomID,
		IsActive:    true,
	}
	students.students[other.ID] = other

	// Week of Mon 2026-02-09 .. Sun 2026-02-15. Wednesday is a holiday,
	// Tuesday gets one record, Sunday is not a school day.
	holidays.holidays = append(holidays.holidays, &models.Holiday{
		ID:         uuid.New(),
		Date:       time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		Name:       "Ujian Nasional",
		Category:   models.HolidayUN,
		ApplyToAll: true,
	})
	if _, err := svc.Submit(ctx, &dto.SubmitAttendanceRequest{
		StudentID:    student.ID.String(),
		Date:         "2026-02-10",
		SlotStatuses: fullDay("H", 6),
	}, 1); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	start := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	missing, err := svc.MissingDays(ctx, student.ClassroomID, start, end)
	if err != nil {
		t.Fatalf("MissingDays() error = %v", err)
	}

	// Tuesday is absent even though the second student has no record:
	// a single record covers the classroom for that day.
	want := []string{"2026-02-09", "2026-02-12", "2026-02-13", "2026-02-14"}
	if len(missing) != len(want) {
		t.Fatalf("MissingDays() returned %d days, want %d: %v", len(missing), len(want), missing)
	}
	for i, d := range missing {
		if got := d.Format("2006-01-02"); got != want[i] {
			t.Errorf("MissingDays()[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestMissingDaysEmptyRoster(t *testing.T) {
	svc, _, _, _, _ := attendanceFixture(t)

	start := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	missing, err := svc.MissingDays(context.Background(), uuid.New(), start, end)
	if err != nil {
		t.Fatalf("MissingDays() error = %v", err)
	}
	if missing != nil {
		t.Errorf("MissingDays() = %v, want nil for a classroom with no active students", missing)
	}
}

func TestListForStudentRejectsInvertedRange(t *testing.T) {
	svc, _, _, _, student := attendanceFixture(t)

	start := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListForStudent(context.Background(), student.ID, start, end)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("ListForStudent() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}
