package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"presensia/internal/app/models/dto"
)

// HandleValidationError renders a 400 for request binding failures with
// per-field messages when the validator produced them.
func HandleValidationError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Malformed request body")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fieldErrors := dto.NewValidationErrors()
	for _, fe := range validationErrs {
		fieldErrors.AddError(fe.Field(), validationMessage(fe))
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed").
		WithDetails(fieldErrors.Errors)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	case "numeric":
		return "Must contain digits only"
	default:
		return fmt.Sprintf("Failed validation rule %q", fe.Tag())
	}
}
