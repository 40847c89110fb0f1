package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/helpers"
	"presensia/internal/pkg/logger"
)

// AttendanceStore is the persistence seam for attendance records.
type AttendanceStore interface {
	Upsert(ctx context.Context, record *models.AttendanceRecord) (bool, error)
	BulkUpsert(ctx context.Context, records []*models.AttendanceRecord) (int, error)
	Get(ctx context.Context, studentID uuid.UUID, date time.Time) (*models.AttendanceRecord, error)
	RangeForStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error)
	RangeForClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error)
	RecordedDates(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (map[time.Time]int, error)
}

// StudentLookup resolves roster entries during validation.
type StudentLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ActiveByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error)
}

// HolidayCalendar answers holiday membership questions.
type HolidayCalendar interface {
	ExistsOnDate(ctx context.Context, date time.Time, classroomID uuid.UUID) (bool, error)
	HolidayDatesForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) (map[time.Time]bool, error)
}

// SubmitResult is the outcome of a single attendance submission.
type SubmitResult struct {
	Record  *models.AttendanceRecord
	Created bool
	Warning string
}

// BulkResult is the outcome of an atomic bulk submission.
type BulkResult struct {
	Created  int
	Updated  int
	Warnings []string
}

// AttendanceService records and reads per-day attendance. Submissions are
// validated against the weekday schedule in force at submission time; a
// resubmission for the same (student, date) overwrites the earlier record.
type AttendanceService interface {
	Submit(ctx context.Context, req *dto.SubmitAttendanceRequest, recordedBy int64) (*SubmitResult, error)
	SubmitBulk(ctx context.Context, req *dto.BulkAttendanceRequest, recordedBy int64) (*BulkResult, error)
	GetRecord(ctx context.Context, studentID uuid.UUID, date time.Time) (*models.AttendanceRecord, error)
	ListForStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error)
	ListForClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error)
	MissingDays(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]time.Time, error)
}

type attendanceService struct {
	attendanceStore AttendanceStore
	studentStore    StudentLookup
	scheduleStore   ScheduleStore
	holidayStore    HolidayCalendar
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceStore AttendanceStore, studentStore StudentLookup, scheduleStore ScheduleStore, holidayStore HolidayCalendar) AttendanceService {
	return &attendanceService{
		attendanceStore: attendanceStore,
		studentStore:    studentStore,
		scheduleStore:   scheduleStore,
		holidayStore:    holidayStore,
	}
}

// Submit validates and stores one day of attendance for one student.
// A submission on a holiday is stored anyway and flagged with a warning.
func (s *attendanceService) Submit(ctx context.Context, req *dto.SubmitAttendanceRequest, recordedBy int64) (*SubmitResult, error) {
	record, warning, err := s.buildRecord(ctx, req, recordedBy)
	if err != nil {
		return nil, err
	}

	created, err := s.attendanceStore.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", record.StudentID.String()).
		Str("date", record.Date.Format(helpers.DateLayout)).
		Bool("created", created).
		Int64("recordedBy", recordedBy).
		Msg("Attendance recorded")
	return &SubmitResult{Record: record, Created: created, Warning: warning}, nil
}

// SubmitBulk validates every entry up front, then stores all of them in
// one transaction. A single invalid entry rejects the whole batch.
func (s *attendanceService) SubmitBulk(ctx context.Context, req *dto.BulkAttendanceRequest, recordedBy int64) (*BulkResult, error) {
	records := make([]*models.AttendanceRecord, 0, len(req.Records))
	var warnings []string
	for i := range req.Records {
		record, warning, err := s.buildRecord(ctx, &req.Records[i], recordedBy)
		if err != nil {
			return nil, apperrors.NewCustomError(err,
				fmt.Sprintf("record %d: %s", i, err.Error()))
		}
		if warning != "" {
			warnings = append(warnings, fmt.Sprintf("record %d: %s", i, warning))
		}
		records = append(records, record)
	}

	created, err := s.attendanceStore.BulkUpsert(ctx, records)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("records", len(records)).
		Int("created", created).
		Int64("recordedBy", recordedBy).
		Msg("Bulk attendance recorded")
	return &BulkResult{
		Created:  created,
		Updated:  len(records) - created,
		Warnings: warnings,
	}, nil
}

// GetRecord returns the record for (student, date), or nil when the day
// is unrecorded. An unrecorded day is a normal state, not an error.
func (s *attendanceService) GetRecord(ctx context.Context, studentID uuid.UUID, date time.Time) (*models.AttendanceRecord, error) {
	return s.attendanceStore.Get(ctx, studentID, helpers.TruncateToDate(date))
}

// ListForStudent returns the student's records over a range, oldest first.
func (s *attendanceService) ListForStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.attendanceStore.RangeForStudent(ctx, studentID, start, end)
}

// ListForClassroom returns all records of the classroom's active students
// over a range.
func (s *attendanceService) ListForClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.attendanceStore.RangeForClassroom(ctx, classroomID, start, end)
}

// MissingDays lists the school days in [start, end] on which no active
// student of the classroom has a record. Holidays and non-school days are
// excluded; partially recorded days are not reported.
func (s *attendanceService) MissingDays(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]time.Time, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	students, err := s.studentStore.ActiveByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, nil
	}

	holidays, err := s.holidayStore.HolidayDatesForClassroom(ctx, start, end, classroomID)
	if err != nil {
		return nil, err
	}
	recorded, err := s.attendanceStore.RecordedDates(ctx, classroomID, start, end)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var missing []time.Time
	helpers.EachDate(start, end, func(d time.Time) {
		schedule := schedules[models.WeekdayOf(d)]
		if !schedule.IsSchoolDay || holidays[d] {
			return
		}
		if recorded[d] == 0 {
			missing = append(missing, d)
		}
	})
	return missing, nil
}

// buildRecord runs the full submission validation pipeline and returns
// the record ready for storage plus an advisory warning, if any.
func (s *attendanceService) buildRecord(ctx context.Context, req *dto.SubmitAttendanceRequest, recordedBy int64) (*models.AttendanceRecord, string, error) {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("student id %q is not a valid uuid", req.StudentID))
	}

	date, err := time.Parse(helpers.DateLayout, req.Date)
	if err != nil {
		return nil, "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("date %q must be formatted as YYYY-MM-DD", req.Date))
	}
	date = helpers.TruncateToDate(date)

	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, "", err
	}
	if !student.IsActive {
		return nil, "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("student %s is inactive", student.StudentID))
	}

	schedule, err := s.scheduleStore.GetByWeekday(ctx, models.WeekdayOf(date))
	if err != nil {
		return nil, "", err
	}

	statuses, err := parseSlotStatuses(req.SlotStatuses, schedule.SlotCount)
	if err != nil {
		return nil, "", err
	}

	var warning string
	if !schedule.IsSchoolDay {
		warning = fmt.Sprintf("%s (%s) is not a school day", req.Date, schedule.DayName)
	} else {
		isHoliday, err := s.holidayStore.ExistsOnDate(ctx, date, student.ClassroomID)
		if err != nil {
			return nil, "", err
		}
		if isHoliday {
			warning = fmt.Sprintf("%s is a holiday for this classroom", req.Date)
		}
	}

	return &models.AttendanceRecord{
		ID:           uuid.New(),
		StudentID:    studentID,
		Date:         date,
		SlotStatuses: statuses,
		Notes:        req.Notes,
		RecordedBy:   recordedBy,
		Student:      student,
	}, warning, nil
}

// parseSlotStatuses checks that the map covers slots 1..expected exactly
// and that every status is one of H, S, I, A. Keys must be canonical
// decimal numbers: "01" or "+1" would alias slot 1 and let two raw keys
// collapse into one entry, so they are rejected outright.
func parseSlotStatuses(raw map[string]string, expected int) (models.SlotStatuses, error) {
	if len(raw) != expected {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidSlotShape,
			fmt.Sprintf("expected statuses for %d slots, got %d", expected, len(raw))).
			WithDetails(map[string]interface{}{"expected": expected, "got": len(raw)})
	}

	statuses := make(models.SlotStatuses, len(raw))
	for key, value := range raw {
		slot, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(slot) != key || slot < 1 || slot > expected {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidSlotShape,
				fmt.Sprintf("slot key %q is not a slot number in 1..%d", key, expected))
		}
		status := models.AttendanceStatus(value)
		if !status.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatusValue,
				fmt.Sprintf("slot %d has invalid status %q", slot, value))
		}
		statuses[slot] = status
	}
	return statuses, nil
}

func normalizeRange(start, end time.Time) (time.Time, time.Time, error) {
	start = helpers.TruncateToDate(start)
	end = helpers.TruncateToDate(end)
	if start.After(end) {
		return time.Time{}, time.Time{}, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"start date must not be after end date")
	}
	return start, end, nil
}
