package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"presensia/internal/app/models/dto"
	"presensia/internal/app/services"
	"presensia/internal/middleware"
	"presensia/internal/pkg/apperrors"
)

// HolidayController handles holiday calendar endpoints.
type HolidayController struct {
	holidayService services.HolidayService
}

// NewHolidayController creates a new HolidayController
func NewHolidayController(holidayService services.HolidayService) *HolidayController {
	return &HolidayController{
		holidayService: holidayService,
	}
}

// CreateHoliday registers a holiday. Admin only.
// POST /api/v1/holidays
func (c *HolidayController) CreateHoliday(ctx *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, err := actorID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	holiday, err := c.holidayService.CreateHoliday(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewHolidayResponse(holiday), "Holiday created"))
}

// UpdateHoliday rewrites a holiday. Admin only.
// PUT /api/v1/holidays/:id
func (c *HolidayController) UpdateHoliday(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, err := actorID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	holiday, err := c.holidayService.UpdateHoliday(ctx.Request.Context(), id, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewHolidayResponse(holiday), "Holiday updated"))
}

// DeleteHoliday removes a holiday. Admin only.
// DELETE /api/v1/holidays/:id
func (c *HolidayController) DeleteHoliday(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.holidayService.DeleteHoliday(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Holiday deleted"))
}

// GetHoliday returns one holiday.
// GET /api/v1/holidays/:id
func (c *HolidayController) GetHoliday(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	holiday, err := c.holidayService.GetHoliday(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewHolidayResponse(holiday), ""))
}

// ListHolidays returns holidays in a date range, optionally filtered to
// those applying to one classroom.
// GET /api/v1/holidays?start=...&end=...&classroomId=...
func (c *HolidayController) ListHolidays(ctx *gin.Context) {
	start, end, err := parseDateRangeQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if classroomIDStr := ctx.Query("classroomId"); classroomIDStr != "" {
		classroomID, err := uuid.Parse(classroomIDStr)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				"query parameter \"classroomId\" must be a valid uuid"))
			return
		}
		holidays, err := c.holidayService.ListHolidaysForClassroom(ctx.Request.Context(), start, end, classroomID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewHolidayListResponse(holidays), ""))
		return
	}

	holidays, err := c.holidayService.ListHolidays(ctx.Request.Context(), start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewHolidayListResponse(holidays), ""))
}
