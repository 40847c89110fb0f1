package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"presensia/internal/app/models/dto"
	"presensia/internal/app/services"
	"presensia/internal/middleware"
	"presensia/internal/pkg/apperrors"
)

// ScheduleController handles weekday schedule endpoints.
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetWeeklySchedule returns all 7 weekday entries.
// GET /api/v1/schedules
func (c *ScheduleController) GetWeeklySchedule(ctx *gin.Context) {
	schedules, err := c.scheduleService.GetWeeklySchedule(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewScheduleListResponse(schedules), ""))
}

// GetDaySchedule returns one weekday entry.
// GET /api/v1/schedules/:weekday
func (c *ScheduleController) GetDaySchedule(ctx *gin.Context) {
	weekday, err := strconv.Atoi(ctx.Param("weekday"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrInvalidWeekday,
			"weekday must be a number between 0 and 6"))
		return
	}

	schedule, err := c.scheduleService.GetDaySchedule(ctx.Request.Context(), weekday)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewScheduleResponse(schedule), ""))
}

// UpdateDaySchedule changes one weekday's slot count and school-day flag.
// Admin only.
// PUT /api/v1/schedules/:weekday
func (c *ScheduleController) UpdateDaySchedule(ctx *gin.Context) {
	weekday, err := strconv.Atoi(ctx.Param("weekday"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrInvalidWeekday,
			"weekday must be a number between 0 and 6"))
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, err := actorID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	schedule, err := c.scheduleService.UpdateDaySchedule(ctx.Request.Context(), weekday, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewScheduleResponse(schedule), "Schedule updated"))
}
