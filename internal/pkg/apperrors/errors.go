package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed         = errors.New("validation failed")
	ErrInvalidSlotShape         = errors.New("slot statuses do not match the expected slot count")
	ErrInvalidStatusValue       = errors.New("invalid attendance status value")
	ErrSlotCountOutOfRange      = errors.New("slot count must be between 1 and 10")
	ErrInvalidWeekday           = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidHolidayCategory   = errors.New("invalid holiday category")
	ErrHolidayClassroomConflict = errors.New("a global holiday cannot list classrooms, a scoped one must")
)

// Conflict errors
var (
	// ErrUniquenessConflict signals a concurrent duplicate write detected by
	// the storage layer. Retryable: re-read and retry as an update.
	ErrUniquenessConflict = errors.New("concurrent write conflict")

	ErrResourceAlreadyExists = errors.New("resource already exists")
)

// Lookup errors
var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrUserNotFound      = errors.New("user not found")
)

// Configuration errors
var (
	// ErrScheduleNotSeeded means the weekday schedule table does not hold its
	// mandatory 7 rows. Seeding runs at startup, so hitting this at runtime
	// is a fatal invariant violation, not a user error.
	ErrScheduleNotSeeded = errors.New("day schedule not seeded")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")
)

// CustomError carries structured context alongside a sentinel error so the
// presentation layer can render field-level messages.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails attaches context details (field, offending value, student id).
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
