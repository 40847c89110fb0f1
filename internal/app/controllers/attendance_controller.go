package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensia/internal/app/models/dto"
	"presensia/internal/app/services"
	"presensia/internal/middleware"
	"presensia/internal/pkg/helpers"
)

// AttendanceController handles attendance submission and lookup endpoints.
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// Submit stores one day of attendance for one student.
// POST /api/v1/attendance
func (c *AttendanceController) Submit(ctx *gin.Context) {
	var req dto.SubmitAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, err := actorID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.attendanceService.Submit(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewSuccessResponse(dto.SubmitAttendanceResponse{
		Record:  dto.NewAttendanceRecordResponse(result.Record),
		Created: result.Created,
		Warning: result.Warning,
	}, "Attendance recorded"))
}

// SubmitBulk stores attendance for several students atomically.
// POST /api/v1/attendance/bulk
func (c *AttendanceController) SubmitBulk(ctx *gin.Context) {
	var req dto.BulkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, err := actorID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.attendanceService.SubmitBulk(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BulkAttendanceResponse{
		Created:  result.Created,
		Updated:  result.Updated,
		Warnings: result.Warnings,
	}, "Bulk attendance recorded"))
}

// GetRecord returns one student's record for a date. Data is null when
// the day is unrecorded.
// GET /api/v1/attendance/students/:studentId?date=...
func (c *AttendanceController) GetRecord(ctx *gin.Context) {
	studentID, err := parseUUIDParam(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	date, err := parseDateQuery(ctx, "date")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record, err := c.attendanceService.GetRecord(ctx.Request.Context(), studentID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if record == nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "No attendance recorded for this date"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAttendanceRecordResponse(record), ""))
}

// ListForStudent returns one student's records over a range.
// GET /api/v1/attendance/students/:studentId/range?start=...&end=...
func (c *AttendanceController) ListForStudent(ctx *gin.Context) {
	studentID, err := parseUUIDParam(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	start, end, err := parseDateRangeQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, err := c.attendanceService.ListForStudent(ctx.Request.Context(), studentID, start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAttendanceListResponse(records), ""))
}

// ListForClassroom returns all records of a classroom's active students
// over a range.
// GET /api/v1/attendance/classrooms/:classroomId?start=...&end=...
func (c *AttendanceController) ListForClassroom(ctx *gin.Context) {
	classroomID, err := parseUUIDParam(ctx, "classroomId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	start, end, err := parseDateRangeQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, err := c.attendanceService.ListForClassroom(ctx.Request.Context(), classroomID, start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAttendanceListResponse(records), ""))
}

// MissingDays lists school days with no records at all for the classroom.
// GET /api/v1/attendance/classrooms/:classroomId/missing?start=...&end=...
func (c *AttendanceController) MissingDays(ctx *gin.Context) {
	classroomID, err := parseUUIDParam(ctx, "classroomId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	start, end, err := parseDateRangeQuery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	missing, err := c.attendanceService.MissingDays(ctx.Request.Context(), classroomID, start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.MissingDaysResponse{
		ClassroomID: classroomID.String(),
		StartDate:   helpers.TruncateToDate(start).Format(helpers.DateLayout),
		EndDate:     helpers.TruncateToDate(end).Format(helpers.DateLayout),
		Dates:       make([]string, 0, len(missing)),
	}
	for _, d := range missing {
		resp.Dates = append(resp.Dates, d.Format(helpers.DateLayout))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}
