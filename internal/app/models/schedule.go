package models

import "time"

// Slot count bounds accepted by schedule updates.
const (
	MinSlotCount = 1
	MaxSlotCount = 10
)

// DaySchedule configures one weekday of the school week: how many lesson
// slots (JP) it has and whether it is a school day at all. Exactly seven
// rows exist, keyed by Weekday 0 (Monday) through 6 (Sunday).
type DaySchedule struct {
	Weekday     int       `json:"weekday" db:"weekday"`
	DayName     string    `json:"dayName" db:"day_name"`
	SlotCount   int       `json:"slotCount" db:"slot_count"`
	IsSchoolDay bool      `json:"isSchoolDay" db:"is_school_day"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	UpdatedBy   *int64    `json:"updatedBy,omitempty" db:"updated_by"`
}

// DayNames holds the display names for weekdays 0..6.
var DayNames = [7]string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}

// WeekdayOf converts a calendar date to the 0=Monday .. 6=Sunday index
// used by the schedule table. time.Weekday has Sunday = 0.
func WeekdayOf(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
