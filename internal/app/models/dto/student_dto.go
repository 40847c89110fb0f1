package dto

import "presensia/internal/app/models"

// CreateStudentRequest represents roster entry creation data
type CreateStudentRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required,max=10"`
	NISN          string `json:"nisn" binding:"omitempty,len=10,numeric"`
	Name          string `json:"name" binding:"required,max=100"`
	ClassroomID   string `json:"classroomId" binding:"required,uuid"`
}

// UpdateStudentRequest represents roster entry update data
type UpdateStudentRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required,max=10"`
	NISN          string `json:"nisn" binding:"omitempty,len=10,numeric"`
	Name          string `json:"name" binding:"required,max=100"`
	ClassroomID   string `json:"classroomId" binding:"required,uuid"`
	IsActive      *bool  `json:"isActive" binding:"required"`
}

// StudentResponse represents one roster entry
type StudentResponse struct {
	ID            string `json:"id"`
	StudentNumber string `json:"studentNumber"`
	NISN          string `json:"nisn,omitempty"`
	Name          string `json:"name"`
	ClassroomID   string `json:"classroomId"`
	ClassroomName string `json:"classroomName,omitempty"`
	IsActive      bool   `json:"isActive"`
}

// StudentListResponse represents a classroom roster
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

// NewStudentResponse converts a student model to its response form
func NewStudentResponse(s *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:            s.ID.String(),
		StudentNumber: s.StudentID,
		NISN:          s.NISN,
		Name:          s.Name,
		ClassroomID:   s.ClassroomID.String(),
		IsActive:      s.IsActive,
	}
	if s.Classroom != nil {
		resp.ClassroomName = s.Classroom.DisplayName()
	}
	return resp
}

// NewStudentListResponse converts a list of students
func NewStudentListResponse(students []*models.Student) StudentListResponse {
	resp := StudentListResponse{Students: make([]StudentResponse, 0, len(students))}
	for _, s := range students {
		resp.Students = append(resp.Students, NewStudentResponse(s))
	}
	return resp
}
