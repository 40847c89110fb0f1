package dto

import (
	"time"

	"presensia/internal/app/models"
)

// UpdateScheduleRequest represents a weekday schedule change
type UpdateScheduleRequest struct {
	SlotCount   int   `json:"slotCount" binding:"required,min=1,max=10" example:"6"`
	IsSchoolDay *bool `json:"isSchoolDay" binding:"required" example:"true"`
}

// ScheduleResponse represents one weekday schedule entry
type ScheduleResponse struct {
	Weekday     int       `json:"weekday" example:"0"`
	DayName     string    `json:"dayName" example:"Senin"`
	SlotCount   int       `json:"slotCount" example:"6"`
	IsSchoolDay bool      `json:"isSchoolDay" example:"true"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ScheduleListResponse represents the full weekly schedule
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// NewScheduleResponse converts a day schedule model to its response form
func NewScheduleResponse(s *models.DaySchedule) ScheduleResponse {
	return ScheduleResponse{
		Weekday:     s.Weekday,
		DayName:     s.DayName,
		SlotCount:   s.SlotCount,
		IsSchoolDay: s.IsSchoolDay,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewScheduleListResponse converts a full weekly schedule
func NewScheduleListResponse(schedules []*models.DaySchedule) ScheduleListResponse {
	resp := ScheduleListResponse{Schedules: make([]ScheduleResponse, 0, len(schedules))}
	for _, s := range schedules {
		resp.Schedules = append(resp.Schedules, NewScheduleResponse(s))
	}
	return resp
}
