package dto

import (
	"strconv"
	"time"

	"presensia/internal/app/models"
	"presensia/internal/pkg/helpers"
)

// SubmitAttendanceRequest represents one day of attendance for one student.
// SlotStatuses maps slot numbers ("1".."N") to status codes (H/S/I/A).
type SubmitAttendanceRequest struct {
	StudentID    string            `json:"studentId" binding:"required,uuid"`
	Date         string            `json:"date" binding:"required" example:"2026-02-11"`
	SlotStatuses map[string]string `json:"slotStatuses" binding:"required"`
	Notes        string            `json:"notes" binding:"max=500"`
}

// BulkAttendanceRequest represents attendance for several students at once
type BulkAttendanceRequest struct {
	Records []SubmitAttendanceRequest `json:"records" binding:"required,min=1,dive"`
}

// AttendanceRecordResponse represents a stored attendance record
type AttendanceRecordResponse struct {
	ID           string            `json:"id"`
	StudentID    string            `json:"studentId"`
	StudentName  string            `json:"studentName,omitempty"`
	Date         string            `json:"date" example:"2026-02-11"`
	SlotStatuses map[string]string `json:"slotStatuses"`
	Notes        string            `json:"notes,omitempty"`
	TotalSlots   int               `json:"totalSlots"`
	TotalHadir   int               `json:"totalHadir"`
	TotalSakit   int               `json:"totalSakit"`
	TotalIzin    int               `json:"totalIzin"`
	TotalAlpa    int               `json:"totalAlpa"`
	RecordedBy   int64             `json:"recordedBy"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// SubmitAttendanceResponse wraps a stored record with submission metadata.
// Warning is set when the submission landed on a holiday or non-school day;
// the record is stored regardless.
type SubmitAttendanceResponse struct {
	Record  AttendanceRecordResponse `json:"record"`
	Created bool                     `json:"created"`
	Warning string                   `json:"warning,omitempty"`
}

// BulkAttendanceResponse summarizes an atomic bulk submission
type BulkAttendanceResponse struct {
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Warnings []string `json:"warnings,omitempty"`
}

// AttendanceListResponse represents a list of attendance records
type AttendanceListResponse struct {
	Records []AttendanceRecordResponse `json:"records"`
}

// NewAttendanceRecordResponse converts a record model to its response form
func NewAttendanceRecordResponse(r *models.AttendanceRecord) AttendanceRecordResponse {
	resp := AttendanceRecordResponse{
		ID:           r.ID.String(),
		StudentID:    r.StudentID.String(),
		Date:         r.Date.Format(helpers.DateLayout),
		SlotStatuses: slotStatusesToStrings(r.SlotStatuses),
		Notes:        r.Notes,
		TotalSlots:   r.SlotStatuses.TotalSlots(),
		TotalHadir:   r.TotalHadir(),
		TotalSakit:   r.TotalSakit(),
		TotalIzin:    r.TotalIzin(),
		TotalAlpa:    r.TotalAlpa(),
		RecordedBy:   r.RecordedBy,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Student != nil {
		resp.StudentName = r.Student.Name
	}
	return resp
}

// NewAttendanceListResponse converts a list of records
func NewAttendanceListResponse(records []*models.AttendanceRecord) AttendanceListResponse {
	resp := AttendanceListResponse{Records: make([]AttendanceRecordResponse, 0, len(records))}
	for _, r := range records {
		resp.Records = append(resp.Records, NewAttendanceRecordResponse(r))
	}
	return resp
}

func slotStatusesToStrings(m models.SlotStatuses) map[string]string {
	out := make(map[string]string, len(m))
	for slot, status := range m {
		out[strconv.Itoa(slot)] = string(status)
	}
	return out
}
