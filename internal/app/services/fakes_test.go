package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"presensia/internal/app/models"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/helpers"
)

// fakeScheduleStore serves a fixed in-memory week.
type fakeScheduleStore struct {
	schedules map[int]*models.DaySchedule
	updated   *models.DaySchedule
}

// defaultWeek mirrors the seeded schedule: Mon-Thu 6 slots, Fri 4,
// Sat 6, Sun off.
func defaultWeek() *fakeScheduleStore {
	counts := [7]int{6, 6, 6, 6, 4, 6, 0}
	schedules := make(map[int]*models.DaySchedule, 7)
	for weekday := 0; weekday < 7; weekday++ {
		schedules[weekday] = &models.DaySchedule{
			Weekday:     weekday,
			DayName:     models.DayNames[weekday],
			SlotCount:   counts[weekday],
			IsSchoolDay: counts[weekday] > 0,
		}
	}
	return &fakeScheduleStore{schedules: schedules}
}

func (f *fakeScheduleStore) GetAll(ctx context.Context) ([]*models.DaySchedule, error) {
	out := make([]*models.DaySchedule, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		out = append(out, f.schedules[weekday])
	}
	return out, nil
}

func (f *fakeScheduleStore) GetByWeekday(ctx context.Context, weekday int) (*models.DaySchedule, error) {
	s, ok := f.schedules[weekday]
	if !ok {
		return nil, apperrors.ErrScheduleNotSeeded
	}
	return s, nil
}

func (f *fakeScheduleStore) Update(ctx context.Context, weekday int, slotCount int, isSchoolDay bool, updatedBy int64) (*models.DaySchedule, error) {
	s := &models.DaySchedule{
		Weekday:     weekday,
		DayName:     models.DayNames[weekday],
		SlotCount:   slotCount,
		IsSchoolDay: isSchoolDay,
		UpdatedAt:   time.Now(),
		UpdatedBy:   &updatedBy,
	}
	f.schedules[weekday] = s
	f.updated = s
	return s, nil
}

// fakeStudentStore holds a roster keyed by id.
type fakeStudentStore struct {
	students map[uuid.UUID]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{students: make(map[uuid.UUID]*models.Student)}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) ActiveByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.ClassroomID == classroomID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.ClassroomID == classroomID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

// fakeHolidayStore keeps holidays in a slice and answers date lookups.
type fakeHolidayStore struct {
	holidays []*models.Holiday
	deleted  []uuid.UUID
}

func (f *fakeHolidayStore) Create(ctx context.Context, holiday *models.Holiday) error {
	f.holidays = append(f.holidays, holiday)
	return nil
}

func (f *fakeHolidayStore) Update(ctx context.Context, holiday *models.Holiday) error {
	for i, h := range f.holidays {
		if h.ID == holiday.ID {
			f.holidays[i] = holiday
			return nil
		}
	}
	return apperrors.ErrHolidayNotFound
}

func (f *fakeHolidayStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i, h := range f.holidays {
		if h.ID == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return apperrors.ErrHolidayNotFound
}

func (f *fakeHolidayStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Holiday, error) {
	for _, h := range f.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, apperrors.ErrHolidayNotFound
}

func (f *fakeHolidayStore) GetRange(ctx context.Context, start, end time.Time) ([]*models.Holiday, error) {
	var out []*models.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayStore) GetRangeForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) ([]*models.Holiday, error) {
	var out []*models.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) && h.AppliesTo(classroomID) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayStore) ExistsOnDate(ctx context.Context, date time.Time, classroomID uuid.UUID) (bool, error) {
	for _, h := range f.holidays {
		if helpers.SameDate(h.Date, date) && h.AppliesTo(classroomID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayStore) HolidayDatesForClassroom(ctx context.Context, start, end time.Time, classroomID uuid.UUID) (map[time.Time]bool, error) {
	dates := make(map[time.Time]bool)
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) && h.AppliesTo(classroomID) {
			dates[helpers.TruncateToDate(h.Date)] = true
		}
	}
	return dates, nil
}

// fakeAttendanceStore keys records by (student, date) like the unique
// constraint does.
type fakeAttendanceStore struct {
	records map[string]*models.AttendanceRecord
	// students lets range queries resolve classroom membership
	students *fakeStudentStore
	failBulk error
}

func newFakeAttendanceStore(students *fakeStudentStore) *fakeAttendanceStore {
	return &fakeAttendanceStore{
		records:  make(map[string]*models.AttendanceRecord),
		students: students,
	}
}

func recordKey(studentID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s/%s", studentID, date.Format(helpers.DateLayout))
}

func (f *fakeAttendanceStore) Upsert(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	key := recordKey(record.StudentID, record.Date)
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
		f.records[key] = record
		return false, nil
	}
	f.records[key] = record
	return true, nil
}

func (f *fakeAttendanceStore) BulkUpsert(ctx context.Context, records []*models.AttendanceRecord) (int, error) {
	if f.failBulk != nil {
		return 0, f.failBulk
	}
	created := 0
	for _, r := range records {
		inserted, err := f.Upsert(ctx, r)
		if err != nil {
			return 0, err
		}
		if inserted {
			created++
		}
	}
	return created, nil
}

func (f *fakeAttendanceStore) Get(ctx context.Context, studentID uuid.UUID, date time.Time) (*models.AttendanceRecord, error) {
	return f.records[recordKey(studentID, date)], nil
}

func (f *fakeAttendanceStore) RangeForStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error) {
	var out []*models.AttendanceRecord
	helpers.EachDate(start, end, func(d time.Time) {
		if r, ok := f.records[recordKey(studentID, d)]; ok {
			out = append(out, r)
		}
	})
	return out, nil
}

func (f *fakeAttendanceStore) RangeForClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error) {
	students, _ := f.students.ActiveByClassroom(ctx, classroomID)
	var out []*models.AttendanceRecord
	for _, s := range students {
		records, _ := f.RangeForStudent(ctx, s.ID, start, end)
		out = append(out, records...)
	}
	return out, nil
}

func (f *fakeAttendanceStore) RecordedDates(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (map[time.Time]int, error) {
	records, _ := f.RangeForClassroom(ctx, classroomID, start, end)
	counts := make(map[time.Time]int)
	for _, r := range records {
		counts[helpers.TruncateToDate(r.Date)]++
	}
	return counts, nil
}

// fakeClassroomStore holds classrooms keyed by id.
type fakeClassroomStore struct {
	classrooms map[uuid.UUID]*models.Classroom
}

func newFakeClassroomStore(classrooms ...*models.Classroom) *fakeClassroomStore {
	f := &fakeClassroomStore{classrooms: make(map[uuid.UUID]*models.Classroom)}
	for _, c := range classrooms {
		f.classrooms[c.ID] = c
	}
	return f
}

func (f *fakeClassroomStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Classroom, error) {
	c, ok := f.classrooms[id]
	if !ok {
		return nil, apperrors.ErrClassroomNotFound
	}
	return c, nil
}

func (f *fakeClassroomStore) Create(ctx context.Context, classroom *models.Classroom) error {
	f.classrooms[classroom.ID] = classroom
	return nil
}

func (f *fakeClassroomStore) Update(ctx context.Context, classroom *models.Classroom) error {
	if _, ok := f.classrooms[classroom.ID]; !ok {
		return apperrors.ErrClassroomNotFound
	}
	f.classrooms[classroom.ID] = classroom
	return nil
}

func (f *fakeClassroomStore) GetAll(ctx context.Context, activeOnly bool) ([]*models.Classroom, error) {
	var out []*models.Classroom
	for _, c := range f.classrooms {
		if !activeOnly || c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeUserStore holds users keyed by username.
type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]*models.User), nextID: 1}
	for _, u := range users {
		f.users[u.Username] = u
	}
	return f
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeTokenIssuer returns a canned token.
type fakeTokenIssuer struct {
	token string
}

func (f *fakeTokenIssuer) GenerateToken(user *models.User) (string, int, error) {
	return f.token, 3600, nil
}
