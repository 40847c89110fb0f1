package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency injection.
type Repositories struct {
	Users      *UserRepository
	Classrooms *ClassroomRepository
	Students   *StudentRepository
	Schedules  *ScheduleRepository
	Holidays   *HolidayRepository
	Attendance *AttendanceRepository
}

// NewRepositories creates all repositories over one connection pool.
func NewRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(dbPool),
		Classrooms: NewClassroomRepository(dbPool),
		Students:   NewStudentRepository(dbPool),
		Schedules:  NewScheduleRepository(dbPool),
		Holidays:   NewHolidayRepository(dbPool),
		Attendance: NewAttendanceRepository(dbPool),
	}
}
