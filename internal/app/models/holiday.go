package models

import (
	"time"

	"github.com/google/uuid"
)

// HolidayCategory classifies why a date is excluded from attendance.
type HolidayCategory string

const (
	HolidayUAS       HolidayCategory = "UAS"       // end-of-term exams
	HolidayUN        HolidayCategory = "UN"        // national exams
	HolidayPesantren HolidayCategory = "PESANTREN" // boarding-school programme
	HolidayLainnya   HolidayCategory = "LAINNYA"   // anything else
)

// AllHolidayCategories lists every valid holiday category.
var AllHolidayCategories = []HolidayCategory{HolidayUAS, HolidayUN, HolidayPesantren, HolidayLainnya}

// Valid reports whether the category belongs to the fixed enumeration.
func (c HolidayCategory) Valid() bool {
	switch c {
	case HolidayUAS, HolidayUN, HolidayPesantren, HolidayLainnya:
		return true
	}
	return false
}

// Holiday marks a date as a non-attendance day, either globally
// (ApplyToAll) or for the listed classrooms only. The two are mutually
// exclusive: a global holiday carries no classroom ids, a scoped one
// must carry at least one.
type Holiday struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Date        time.Time       `json:"date" db:"date"`
	Name        string          `json:"name" db:"name"`
	Category    HolidayCategory `json:"category" db:"category"`
	ApplyToAll  bool            `json:"applyToAll" db:"apply_to_all"`
	Description string          `json:"description" db:"description"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
	CreatedBy   int64           `json:"createdBy" db:"created_by"`
	UpdatedBy   int64           `json:"updatedBy" db:"updated_by"`

	// ClassroomIDs is populated for classroom-scoped holidays.
	ClassroomIDs []uuid.UUID `json:"classroomIds,omitempty"`
}

// AppliesTo reports whether the holiday covers the given classroom.
func (h *Holiday) AppliesTo(classroomID uuid.UUID) bool {
	if h.ApplyToAll {
		return true
	}
	for _, id := range h.ClassroomIDs {
		if id == classroomID {
			return true
		}
	}
	return false
}
