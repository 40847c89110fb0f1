package dto

import "presensia/internal/app/models"

// CreateClassroomRequest represents classroom creation data
type CreateClassroomRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	Grade        int    `json:"grade" binding:"required,min=1,max=12"`
	Section      string `json:"section" binding:"max=5"`
	AcademicYear string `json:"academicYear" binding:"required,max=9" example:"2025/2026"`
}

// UpdateClassroomRequest represents classroom update data
type UpdateClassroomRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	Grade        int    `json:"grade" binding:"required,min=1,max=12"`
	Section      string `json:"section" binding:"max=5"`
	AcademicYear string `json:"academicYear" binding:"required,max=9"`
	IsActive     *bool  `json:"isActive" binding:"required"`
}

// ClassroomResponse represents one classroom
type ClassroomResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName" example:"7-A"`
	Grade        int    `json:"grade"`
	Section      string `json:"section,omitempty"`
	AcademicYear string `json:"academicYear"`
	IsActive     bool   `json:"isActive"`
}

// ClassroomListResponse represents a list of classrooms
type ClassroomListResponse struct {
	Classrooms []ClassroomResponse `json:"classrooms"`
}

// NewClassroomResponse converts a classroom model to its response form
func NewClassroomResponse(c *models.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		DisplayName:  c.DisplayName(),
		Grade:        c.Grade,
		Section:      c.Section,
		AcademicYear: c.AcademicYear,
		IsActive:     c.IsActive,
	}
}

// NewClassroomListResponse converts a list of classrooms
func NewClassroomListResponse(classrooms []*models.Classroom) ClassroomListResponse {
	resp := ClassroomListResponse{Classrooms: make([]ClassroomResponse, 0, len(classrooms))}
	for _, c := range classrooms {
		resp.Classrooms = append(resp.Classrooms, NewClassroomResponse(c))
	}
	return resp
}
