package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Classroom groups students for attendance and reporting. The attendance
// core only reads classrooms; administration owns their lifecycle.
type Classroom struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Grade        int       `json:"grade" db:"grade"`
	Section      string    `json:"section" db:"section"`
	AcademicYear string    `json:"academicYear" db:"academic_year"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// DisplayName returns the conventional "7-A" style label.
func (c *Classroom) DisplayName() string {
	if c.Section == "" {
		return fmt.Sprintf("%d", c.Grade)
	}
	return fmt.Sprintf("%d-%s", c.Grade, c.Section)
}
