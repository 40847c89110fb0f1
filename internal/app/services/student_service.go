package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/logger"
)

// StudentStore is the persistence seam for roster administration.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ActiveByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error)
	ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error)
}

// StudentService administers the roster. Students are never deleted;
// deactivating one removes it from rosters and reports while keeping its
// attendance history.
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context, classroomID uuid.UUID, includeInactive bool) ([]*models.Student, error)
}

type studentService struct {
	studentStore   StudentStore
	classroomStore ClassroomLookup
}

// NewStudentService creates a new student service
func NewStudentService(studentStore StudentStore, classroomStore ClassroomLookup) StudentService {
	return &studentService{
		studentStore:   studentStore,
		classroomStore: classroomStore,
	}
}

// CreateStudent adds a new active roster entry.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	classroomID, err := s.resolveClassroom(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:          uuid.New(),
		StudentID:   req.StudentNumber,
		NISN:        req.NISN,
		Name:        req.Name,
		ClassroomID: classroomID,
		IsActive:    true,
	}
	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentId", student.ID.String()).
		Str("studentNumber", student.StudentID).
		Msg("Student created")
	return student, nil
}

// UpdateStudent rewrites a roster entry, including moving it to another
// classroom or toggling its active flag.
func (s *studentService) UpdateStudent(ctx context.Context, id uuid.UUID, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	classroomID, err := s.resolveClassroom(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}

	student.StudentID = req.StudentNumber
	student.NISN = req.NISN
	student.Name = req.Name
	student.ClassroomID = classroomID
	student.IsActive = *req.IsActive
	student.Classroom = nil

	if err := s.studentStore.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.studentStore.GetByID(ctx, id)
}

// GetStudent returns one roster entry.
func (s *studentService) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return s.studentStore.GetByID(ctx, id)
}

// ListStudents returns the classroom roster, by default active only.
func (s *studentService) ListStudents(ctx context.Context, classroomID uuid.UUID, includeInactive bool) ([]*models.Student, error) {
	if _, err := s.classroomStore.GetByID(ctx, classroomID); err != nil {
		return nil, err
	}
	if includeInactive {
		return s.studentStore.ListByClassroom(ctx, classroomID)
	}
	return s.studentStore.ActiveByClassroom(ctx, classroomID)
}

func (s *studentService) resolveClassroom(ctx context.Context, idStr string) (uuid.UUID, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("classroom id %q is not a valid uuid", idStr))
	}
	if _, err := s.classroomStore.GetByID(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
