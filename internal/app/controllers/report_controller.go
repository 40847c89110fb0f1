package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensia/internal/app/models/dto"
	"presensia/internal/app/services"
	"presensia/internal/middleware"
)

// ReportController handles attendance aggregation endpoints.
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// StudentSummary aggregates one student over a range.
// GET /api/v1/reports/students/:studentId?start=...&end=...
func (c *ReportController) StudentSummary(ctx *gin.Context) {
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

	summary, err := c.reportService.SummarizeStudent(ctx.Request.Context(), studentID, start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}

// ClassroomSummary aggregates a whole classroom over a range.
// GET /api/v1/reports/classrooms/:classroomId?start=...&end=...
func (c *ReportController) ClassroomSummary(ctx *gin.Context) {
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

	summary, err := c.reportService.SummarizeClassroom(ctx.Request.Context(), classroomID, start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}

// DailySummary describes one classroom day.
// GET /api/v1/reports/classrooms/:classroomId/daily?date=...
func (c *ReportController) DailySummary(ctx *gin.Context) {
	classroomID, err := parseUUIDParam(ctx, "classroomId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	date, err := parseDateQuery(ctx, "date")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary, err := c.reportService.DailySummary(ctx.Request.Context(), classroomID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}

// ClassReport builds the per-day attendance grid of a classroom.
// GET /api/v1/reports/classrooms/:classroomId/grid?start=...&end=...
func (c *ReportController) ClassReport(ctx *gin.Context) {
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

	report, err := c.reportService.ClassReport(ctx.Request.Context(), classroomID, start, end)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report, ""))
}
