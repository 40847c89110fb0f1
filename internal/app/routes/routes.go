package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"presensia/internal/app/controllers"
	"presensia/internal/app/models"
	"presensia/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	scheduleController *controllers.ScheduleController,
	holidayController *controllers.HolidayController,
	attendanceController *controllers.AttendanceController,
	reportController *controllers.ReportController,
	studentController *controllers.StudentController,
	classroomController *controllers.ClassroomController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))

	// User administration (admin only)
	users := authenticated.Group("/users")
	users.Use(adminOnly)
	{
		users.POST("", authController.CreateUser)
	}

	// Weekday schedule: readable by any authenticated user, writable by admins
	schedules := authenticated.Group("/schedules")
	{
		schedules.GET("", scheduleController.GetWeeklySchedule)
		schedules.GET("/:weekday", scheduleController.GetDaySchedule)

		schedulesAdmin := schedules.Group("")
		schedulesAdmin.Use(adminOnly)
		{
			schedulesAdmin.PUT("/:weekday", scheduleController.UpdateDaySchedule)
		}
	}

	// Holiday calendar
	holidays := authenticated.Group("/holidays")
	{
		holidays.GET("", holidayController.ListHolidays)
		holidays.GET("/:id", holidayController.GetHoliday)

		holidaysAdmin := holidays.Group("")
		holidaysAdmin.Use(adminOnly)
		{
			holidaysAdmin.POST("", holidayController.CreateHoliday)
			holidaysAdmin.PUT("/:id", holidayController.UpdateHoliday)
			holidaysAdmin.DELETE("/:id", holidayController.DeleteHoliday)
		}
	}

	// Attendance submission and lookup
	attendance := authenticated.Group("/attendance")
	{
		attendance.POST("", attendanceController.Submit)
		attendance.POST("/bulk", attendanceController.SubmitBulk)
		attendance.GET("/students/:studentId", attendanceController.GetRecord)
		attendance.GET("/students/:studentId/range", attendanceController.ListForStudent)
		attendance.GET("/classrooms/:classroomId", attendanceController.ListForClassroom)
		attendance.GET("/classrooms/:classroomId/missing", attendanceController.MissingDays)
	}

	// Reports
	reports := authenticated.Group("/reports")
	{
		reports.GET("/students/:studentId", reportController.StudentSummary)
		reports.GET("/classrooms/:classroomId", reportController.ClassroomSummary)
		reports.GET("/classrooms/:classroomId/daily", reportController.DailySummary)
		reports.GET("/classrooms/:classroomId/grid", reportController.ClassReport)
	}

	// Classroom and roster administration
	classrooms := authenticated.Group("/classrooms")
	{
		classrooms.GET("", classroomController.ListClassrooms)
		classrooms.GET("/:id", classroomController.GetClassroom)
		classrooms.GET("/:id/students", studentController.ListStudents)

		classroomsAdmin := classrooms.Group("")
		classroomsAdmin.Use(adminOnly)
		{
			classroomsAdmin.POST("", classroomController.CreateClassroom)
			classroomsAdmin.PUT("/:id", classroomController.UpdateClassroom)
		}
	}

	students := authenticated.Group("/students")
	{
		students.GET("/:id", studentController.GetStudent)

		studentsAdmin := students.Group("")
		studentsAdmin.Use(adminOnly)
		{
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
		}
	}
}
