package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. CustomError
// details, when present, ride along in the error payload.
func HandleAPIError(c *gin.Context, err error) {
	var details interface{}
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		details = customErr.Details
	}

	respond := func(status int, code dto.ErrorCode, message string) {
		errorDetail := dto.NewErrorDetail(code, message)
		if details != nil {
			errorDetail = errorDetail.WithDetails(details)
		}
		c.JSON(status, dto.NewErrorResponse(errorDetail))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeUnauthorized, "Permission denied")

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrClassroomNotFound),
		errors.Is(err, apperrors.ErrHolidayNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrUniquenessConflict):
		respond(http.StatusConflict, dto.ErrorCodeResourceConflict, "Concurrent write conflict, retry the request")

	case errors.Is(err, apperrors.ErrInvalidSlotShape),
		errors.Is(err, apperrors.ErrInvalidStatusValue),
		errors.Is(err, apperrors.ErrSlotCountOutOfRange),
		errors.Is(err, apperrors.ErrInvalidWeekday),
		errors.Is(err, apperrors.ErrInvalidHolidayCategory),
		errors.Is(err, apperrors.ErrHolidayClassroomConflict),
		errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrScheduleNotSeeded):
		logger.Error().Err(err).Msg("Weekday schedule missing at runtime")
		respond(http.StatusInternalServerError, dto.ErrorCodeScheduleNotSeeded, "Schedule configuration missing")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}
