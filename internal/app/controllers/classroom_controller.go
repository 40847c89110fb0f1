package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensia/internal/app/models/dto"
	"presensia/internal/app/services"
	"presensia/internal/middleware"
)

// ClassroomController handles classroom administration endpoints.
type ClassroomController struct {
	classroomService services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService services.ClassroomService) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
	}
}

// CreateClassroom adds a classroom. Admin only.
// POST /api/v1/classrooms
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	classroom, err := c.classroomService.CreateClassroom(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewClassroomResponse(classroom), "Classroom created"))
}

// UpdateClassroom rewrites a classroom. Admin only.
// PUT /api/v1/classrooms/:id
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	classroom, err := c.classroomService.UpdateClassroom(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClassroomResponse(classroom), "Classroom updated"))
}

// GetClassroom returns one classroom.
// GET /api/v1/classrooms/:id
func (c *ClassroomController) GetClassroom(ctx *gin.Context) {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	classroom, err := c.classroomService.GetClassroom(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClassroomResponse(classroom), ""))
}

// ListClassrooms returns classrooms, active only unless
// includeInactive=true.
// GET /api/v1/classrooms
func (c *ClassroomController) ListClassrooms(ctx *gin.Context) {
	includeInactive := ctx.Query("includeInactive") == "true"

	classrooms, err := c.classroomService.ListClassrooms(ctx.Request.Context(), !includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClassroomListResponse(classrooms), ""))
}
