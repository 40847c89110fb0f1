package dto

import (
	"presensia/internal/app/models"
	"presensia/internal/pkg/helpers"
)

// CreateHolidayRequest represents holiday creation data
type CreateHolidayRequest struct {
	Date         string   `json:"date" binding:"required" example:"2026-03-19"`
	Name         string   `json:"name" binding:"required,max=100" example:"Ujian Akhir Semester"`
	Category     string   `json:"category" binding:"required,oneof=UAS UN PESANTREN LAINNYA"`
	ApplyToAll   *bool    `json:"applyToAll" binding:"required"`
	Description  string   `json:"description" binding:"max=500"`
	ClassroomIDs []string `json:"classroomIds" binding:"omitempty,dive,uuid"`
}

// UpdateHolidayRequest represents holiday update data
type UpdateHolidayRequest struct {
	Date         string   `json:"date" binding:"required" example:"2026-03-19"`
	Name         string   `json:"name" binding:"required,max=100"`
	Category     string   `json:"category" binding:"required,oneof=UAS UN PESANTREN LAINNYA"`
	ApplyToAll   *bool    `json:"applyToAll" binding:"required"`
	Description  string   `json:"description" binding:"max=500"`
	ClassroomIDs []string `json:"classroomIds" binding:"omitempty,dive,uuid"`
}

// HolidayResponse represents one holiday entry
type HolidayResponse struct {
	ID           string   `json:"id"`
	Date         string   `json:"date" example:"2026-03-19"`
	Name         string   `json:"name"`
	Category     string   `json:"category" enums:"UAS,UN,PESANTREN,LAINNYA"`
	ApplyToAll   bool     `json:"applyToAll"`
	Description  string   `json:"description,omitempty"`
	ClassroomIDs []string `json:"classroomIds,omitempty"`
}

// HolidayListResponse represents a list of holidays
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

// NewHolidayResponse converts a holiday model to its response form
func NewHolidayResponse(h *models.Holiday) HolidayResponse {
	resp := HolidayResponse{
		ID:          h.ID.String(),
		Date:        h.Date.Format(helpers.DateLayout),
		Name:        h.Name,
		Category:    string(h.Category),
		ApplyToAll:  h.ApplyToAll,
		Description: h.Description,
	}
	for _, id := range h.ClassroomIDs {
		resp.ClassroomIDs = append(resp.ClassroomIDs, id.String())
	}
	return resp
}

// NewHolidayListResponse converts a list of holidays
func NewHolidayListResponse(holidays []*models.Holiday) HolidayListResponse {
	resp := HolidayListResponse{Holidays: make([]HolidayResponse, 0, len(holidays))}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, NewHolidayResponse(h))
	}
	return resp
}
