package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is a roster entry. The attendance core treats students as
// read-only lookups; inactive students are excluded from rosters,
// missing-day checks and classroom reports.
type Student struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StudentID   string    `json:"studentId" db:"student_number"` // school-assigned number, unique
	NISN        string    `json:"nisn,omitempty" db:"nisn"`      // national student id, 10 digits
	Name        string    `json:"name" db:"name"`
	ClassroomID uuid.UUID `json:"classroomId" db:"classroom_id"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Classroom *Classroom `json:"classroom,omitempty"`
}
