package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the per-slot attendance state.
// The single-letter codes follow the school's convention:
// H = Hadir (present), S = Sakit (sick), I = Izin (excused), A = Alpa (absent).
type AttendanceStatus string

const (
	StatusHadir AttendanceStatus = "H"
	StatusSakit AttendanceStatus = "S"
	StatusIzin  AttendanceStatus = "I"
	StatusAlpa  AttendanceStatus = "A"
)

// AllStatuses lists every valid attendance status.
var AllStatuses = []AttendanceStatus{StatusHadir, StatusSakit, StatusIzin, StatusAlpa}

// Valid reports whether the status is one of H, S, I, A.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusHadir, StatusSakit, StatusIzin, StatusAlpa:
		return true
	}
	return false
}

// SlotStatuses maps a lesson-slot number (1..N, N from the day schedule)
// to its attendance status. Serialized to JSONB with string keys.
type SlotStatuses map[int]AttendanceStatus

// Count returns how many slots carry the given status.
func (m SlotStatuses) Count(status AttendanceStatus) int {
	n := 0
	for _, s := range m {
		if s == status {
			n++
		}
	}
	return n
}

// TotalSlots returns the number of recorded slots.
func (m SlotStatuses) TotalSlots() int {
	return len(m)
}

// AttendanceRecord is the unit of per-day attendance for one student.
// At most one record exists per (student, date); the database enforces it.
type AttendanceRecord struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	StudentID    uuid.UUID    `json:"studentId" db:"student_id"`
	Date         time.Time    `json:"date" db:"date"`
	SlotStatuses SlotStatuses `json:"slotStatuses" db:"slot_statuses"`
	Notes        string       `json:"notes" db:"notes"`
	RecordedBy   int64        `json:"recordedBy" db:"recorded_by"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
	CreatedBy    int64        `json:"createdBy" db:"created_by"`
	UpdatedBy    int64        `json:"updatedBy" db:"updated_by"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}

// TotalHadir returns the number of present slots in this record.
func (r *AttendanceRecord) TotalHadir() int { return r.SlotStatuses.Count(StatusHadir) }

// TotalSakit returns the number of sick slots in this record.
func (r *AttendanceRecord) TotalSakit() int { return r.SlotStatuses.Count(StatusSakit) }

// TotalIzin returns the number of excused slots in this record.
func (r *AttendanceRecord) TotalIzin() int { return r.SlotStatuses.Count(StatusIzin) }

// TotalAlpa returns the number of absent slots in this record.
func (r *AttendanceRecord) TotalAlpa() int { return r.SlotStatuses.Count(StatusAlpa) }
