package services

import (
	"context"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/logger"
)

// ClassroomStore is the persistence seam for classroom administration.
type ClassroomStore interface {
	Create(ctx context.Context, classroom *models.Classroom) error
	Update(ctx context.Context, classroom *models.Classroom) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*models.Classroom, error)
}

// ClassroomService administers classrooms.
type ClassroomService interface {
	CreateClassroom(ctx context.Context, req *dto.CreateClassroomRequest) (*models.Classroom, error)
	UpdateClassroom(ctx context.Context, id uuid.UUID, req *dto.UpdateClassroomRequest) (*models.Classroom, error)
	GetClassroom(ctx context.Context, id uuid.UUID) (*models.Classroom, error)
	ListClassrooms(ctx context.Context, activeOnly bool) ([]*models.Classroom, error)
}

type classroomService struct {
	classroomStore ClassroomStore
}

// NewClassroomService creates a new classroom service
func NewClassroomService(classroomStore ClassroomStore) ClassroomService {
	return &classroomService{
		classroomStore: classroomStore,
	}
}

// CreateClassroom adds a new active classroom.
func (s *classroomService) CreateClassroom(ctx context.Context, req *dto.CreateClassroomRequest) (*models.Classroom, error) {
	classroom := &models.Classroom{
		ID:           uuid.New(),
		Name:         req.Name,
		Grade:        req.Grade,
		Section:      req.Section,
		AcademicYear: req.AcademicYear,
		IsActive:     true,
	}
	if err := s.classroomStore.Create(ctx, classroom); err != nil {
		return nil, err
	}

	logger.Info().
		Str("classroomId", classroom.ID.String()).
		Str("name", classroom.DisplayName()).
		Msg("Classroom created")
	return classroom, nil
}

// UpdateClassroom rewrites a classroom.
func (s *classroomService) UpdateClassroom(ctx context.Context, id uuid.UUID, req *dto.UpdateClassroomRequest) (*models.Classroom, error) {
	classroom, err := s.classroomStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	classroom.Name = req.Name
	classroom.Grade = req.Grade
	classroom.Section = req.Section
	classroom.AcademicYear = req.AcademicYear
	classroom.IsActive = *req.IsActive

	if err := s.classroomStore.Update(ctx, classroom); err != nil {
		return nil, err
	}
	return classroom, nil
}

// GetClassroom returns one classroom.
func (s *classroomService) GetClassroom(ctx context.Context, id uuid.UUID) (*models.Classroom, error) {
	return s.classroomStore.GetByID(ctx, id)
}

// ListClassrooms returns classrooms ordered by grade and section.
func (s *classroomService) ListClassrooms(ctx context.Context, activeOnly bool) ([]*models.Classroom, error) {
	return s.classroomStore.GetAll(ctx, activeOnly)
}
