package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"presensia/internal/middleware"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/helpers"
)

// actorID returns the authenticated user id stamped on writes.
func actorID(c *gin.Context) (int64, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return 0, apperrors.ErrTokenInvalid
	}
	return userID, nil
}

// parseUUIDParam reads a path parameter as a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("path parameter %q must be a valid uuid", name))
	}
	return id, nil
}

// parseDateQuery reads a required YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("query parameter %q is required", name))
	}
	date, err := time.Parse(helpers.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("query parameter %q must be formatted as YYYY-MM-DD", name))
	}
	return date, nil
}

// parseDateRangeQuery reads the start/end query pair.
func parseDateRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	start, err := parseDateQuery(c, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
