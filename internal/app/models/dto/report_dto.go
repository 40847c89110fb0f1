package dto

// StudentSummaryResponse aggregates one student's attendance over a range.
// Percentage is present slots over total recorded slots; 0 when nothing
// was recorded.
type StudentSummaryResponse struct {
	StudentID     string  `json:"studentId"`
	StudentNumber string  `json:"studentNumber,omitempty"`
	StudentName   string  `json:"studentName,omitempty"`
	StartDate     string  `json:"startDate" example:"2026-02-01"`
	EndDate       string  `json:"endDate" example:"2026-02-28"`
	DaysRecorded  int     `json:"daysRecorded"`
	TotalSlots    int     `json:"totalSlots"`
	TotalHadir    int     `json:"totalHadir"`
	TotalSakit    int     `json:"totalSakit"`
	TotalIzin     int     `json:"totalIzin"`
	TotalAlpa     int     `json:"totalAlpa"`
	Percentage    float64 `json:"percentage" example:"91.67"`
}

// ClassroomSummaryResponse aggregates a whole classroom over a range.
// AveragePercentage is the arithmetic mean over all active students,
// counting students without records at 0.
type ClassroomSummaryResponse struct {
	ClassroomID       string                   `json:"classroomId"`
	ClassroomName     string                   `json:"classroomName"`
	StartDate         string                   `json:"startDate"`
	EndDate           string                   `json:"endDate"`
	StudentCount      int                      `json:"studentCount"`
	TotalSlots        int                      `json:"totalSlots"`
	TotalHadir        int                      `json:"totalHadir"`
	TotalSakit        int                      `json:"totalSakit"`
	TotalIzin         int                      `json:"totalIzin"`
	TotalAlpa         int                      `json:"totalAlpa"`
	AveragePercentage float64                  `json:"averagePercentage"`
	Students          []StudentSummaryResponse `json:"students"`
}

// DailySummaryResponse describes one classroom day
type DailySummaryResponse struct {
	ClassroomID   string `json:"classroomId"`
	Date          string `json:"date"`
	DayName       string `json:"dayName" example:"Senin"`
	IsSchoolDay   bool   `json:"isSchoolDay"`
	IsHoliday     bool   `json:"isHoliday"`
	SlotCount     int    `json:"slotCount"`
	StudentCount  int    `json:"studentCount"`
	RecordedCount int    `json:"recordedCount"`
	TotalHadir    int    `json:"totalHadir"`
	TotalSakit    int    `json:"totalSakit"`
	TotalIzin     int    `json:"totalIzin"`
	TotalAlpa     int    `json:"totalAlpa"`
}

// MissingDaysResponse lists school days in a range on which no active
// student of the classroom has a record
type MissingDaysResponse struct {
	ClassroomID string   `json:"classroomId"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Dates       []string `json:"dates"`
}

// AttendanceDayCell is one student-day cell of the class report grid
type AttendanceDayCell struct {
	SlotStatuses map[string]string `json:"slotStatuses"`
	TotalHadir   int               `json:"totalHadir"`
}

// ClassReportRow is one student's row of the class report grid,
// keyed by date
type ClassReportRow struct {
	StudentID     string                       `json:"studentId"`
	StudentNumber string                       `json:"studentNumber"`
	StudentName   string                       `json:"studentName"`
	Days          map[string]AttendanceDayCell `json:"days"`
	Summary       StudentSummaryResponse       `json:"summary"`
}

// ClassReportResponse is the full per-day attendance grid of a classroom
// over a range. SchoolDates lists the dates that count as school days
// (non-holiday school weekdays), oldest first.
type ClassReportResponse struct {
	Classroom   ClassroomResponse `json:"classroom"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	SchoolDates []string          `json:"schoolDates"`
	Rows        []ClassReportRow  `json:"rows"`
}
