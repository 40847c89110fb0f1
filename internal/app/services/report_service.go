package services

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/helpers"
)

// ReportService computes attendance aggregates. All figures derive from
// stored records; nothing is cached, so reports always reflect the latest
// submissions.
type ReportService interface {
	SummarizeStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) (*dto.StudentSummaryResponse, error)
	SummarizeClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (*dto.ClassroomSummaryResponse, error)
	DailySummary(ctx context.Context, classroomID uuid.UUID, date time.Time) (*dto.DailySummaryResponse, error)
	ClassReport(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (*dto.ClassReportResponse, error)
}

type reportService struct {
	attendanceStore AttendanceStore
	studentStore    StudentLookup
	classroomStore  ClassroomLookup
	scheduleStore   ScheduleStore
	holidayStore    HolidayCalendar
}

// NewReportService creates a new report service
func NewReportService(attendanceStore AttendanceStore, studentStore StudentLookup, classroomStore ClassroomLookup, scheduleStore ScheduleStore, holidayStore HolidayCalendar) ReportService {
	return &reportService{
		attendanceStore: attendanceStore,
		studentStore:    studentStore,
		classroomStore:  classroomStore,
		scheduleStore:   scheduleStore,
		holidayStore:    holidayStore,
	}
}

// SummarizeStudent aggregates one student's slots over [start, end].
func (s *reportService) SummarizeStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) (*dto.StudentSummaryResponse, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceStore.RangeForStudent(ctx, studentID, start, end)
	if err != nil {
		return nil, err
	}

	summary := summarizeRecords(student, records, start, end)
	return &summary, nil
}

// SummarizeClassroom aggregates every active student of the classroom.
// Students with no records in the range count with a 0 percentage, so the
// classroom average reflects the whole roster.
func (s *reportService) SummarizeClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (*dto.ClassroomSummaryResponse, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	classroom, err := s.classroomStore.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	students, err := s.studentStore.ActiveByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceStore.RangeForClassroom(ctx, classroomID, start, end)
	if err != nil {
		return nil, err
	}

	byStudent := groupByStudent(records)
	resp := &dto.ClassroomSummaryResponse{
		ClassroomID:   classroom.ID.String(),
		ClassroomName: classroom.DisplayName(),
		StartDate:     start.Format(helpers.DateLayout),
		EndDate:       end.Format(helpers.DateLayout),
		StudentCount:  len(students),
		Students:      make([]dto.StudentSummaryResponse, 0, len(students)),
	}

	var sum float64
	for _, student := range students {
		summary := summarizeRecords(student, byStudent[student.ID], start, end)
		sum += summary.Percentage
		resp.TotalSlots += summary.TotalSlots
		resp.TotalHadir += summary.TotalHadir
		resp.TotalSakit += summary.TotalSakit
		resp.TotalIzin += summary.TotalIzin
		resp.TotalAlpa += summary.TotalAlpa
		resp.Students = append(resp.Students, summary)
	}
	if len(students) > 0 {
		resp.AveragePercentage = round2(sum / float64(len(students)))
	}
	return resp, nil
}

// DailySummary describes one classroom day: its schedule, holiday state
// and how much of the roster is recorded.
func (s *reportService) DailySummary(ctx context.Context, classroomID uuid.UUID, date time.Time) (*dto.DailySummaryResponse, error) {
	date = helpers.TruncateToDate(date)

	classroom, err := s.classroomStore.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.scheduleStore.GetByWeekday(ctx, models.WeekdayOf(date))
	if err != nil {
		return nil, err
	}
	isHoliday, err := s.holidayStore.ExistsOnDate(ctx, date, classroomID)
	if err != nil {
		return nil, err
	}
	students, err := s.studentStore.ActiveByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceStore.RangeForClassroom(ctx, classroomID, date, date)
	if err != nil {
		return nil, err
	}

	resp := &dto.DailySummaryResponse{
		ClassroomID:   classroom.ID.String(),
		Date:          date.Format(helpers.DateLayout),
		DayName:       schedule.DayName,
		IsSchoolDay:   schedule.IsSchoolDay,
		IsHoliday:     isHoliday,
		SlotCount:     schedule.SlotCount,
		StudentCount:  len(students),
		RecordedCount: len(records),
	}
	for _, r := range records {
		resp.TotalHadir += r.TotalHadir()
		resp.TotalSakit += r.TotalSakit()
		resp.TotalIzin += r.TotalIzin()
		resp.TotalAlpa += r.TotalAlpa()
	}
	return resp, nil
}

// ClassReport builds the per-day attendance grid of a classroom. School
// dates are the non-holiday school weekdays of the range, per the
// schedule in force now.
func (s *reportService) ClassReport(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (*dto.ClassReportResponse, error) {
	start, end, err := normalizeRange(start, end)
	if err != nil {
		return nil, err
	}

	classroom, err := s.classroomStore.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	students, err := s.studentStore.ActiveByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleStore.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidayStore.HolidayDatesForClassroom(ctx, start, end, classroomID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceStore.RangeForClassroom(ctx, classroomID, start, end)
	if err != nil {
		return nil, err
	}

	var schoolDates []string
	helpers.EachDate(start, end, func(d time.Time) {
		if schedules[models.WeekdayOf(d)].IsSchoolDay && !holidays[d] {
			schoolDates = append(schoolDates, d.Format(helpers.DateLayout))
		}
	})

	byStudent := groupByStudent(records)
	resp := &dto.ClassReportResponse{
		Classroom:   dto.NewClassroomResponse(classroom),
		StartDate:   start.Format(helpers.DateLayout),
		EndDate:     end.Format(helpers.DateLayout),
		SchoolDates: schoolDates,
		Rows:        make([]dto.ClassReportRow, 0, len(students)),
	}

	for _, student := range students {
		studentRecords := byStudent[student.ID]
		row := dto.ClassReportRow{
			StudentID:     student.ID.String(),
			StudentNumber: student.StudentID,
			StudentName:   student.Name,
			Days:          make(map[string]dto.AttendanceDayCell, len(studentRecords)),
			Summary:       summarizeRecords(student, studentRecords, start, end),
		}
		for _, r := range studentRecords {
			row.Days[r.Date.Format(helpers.DateLayout)] = dto.AttendanceDayCell{
				SlotStatuses: slotStatusStrings(r.SlotStatuses),
				TotalHadir:   r.TotalHadir(),
			}
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

// summarizeRecords folds a student's records into one summary row.
func summarizeRecords(student *models.Student, records []*models.AttendanceRecord, start, end time.Time) dto.StudentSummaryResponse {
	summary := dto.StudentSummaryResponse{
		StudentID:     student.ID.String(),
		StudentNumber: student.StudentID,
		StudentName:   student.Name,
		StartDate:     start.Format(helpers.DateLayout),
		EndDate:       end.Format(helpers.DateLayout),
		DaysRecorded:  len(records),
	}
	for _, r := range records {
		summary.TotalSlots += r.SlotStatuses.TotalSlots()
		summary.TotalHadir += r.TotalHadir()
		summary.TotalSakit += r.TotalSakit()
		summary.TotalIzin += r.TotalIzin()
		summary.TotalAlpa += r.TotalAlpa()
	}
	if summary.TotalSlots > 0 {
		summary.Percentage = round2(float64(summary.TotalHadir) / float64(summary.TotalSlots) * 100)
	}
	return summary
}

func groupByStudent(records []*models.AttendanceRecord) map[uuid.UUID][]*models.AttendanceRecord {
	grouped := make(map[uuid.UUID][]*models.AttendanceRecord)
	for _, r := range records {
		grouped[r.StudentID] = append(grouped[r.StudentID], r)
	}
	return grouped
}

func slotStatusStrings(m models.SlotStatuses) map[string]string {
	out := make(map[string]string, len(m))
	for slot, status := range m {
		out[strconv.Itoa(slot)] = string(status)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
