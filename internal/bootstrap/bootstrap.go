package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "presensia/internal/app/controllers"
	appMigrations "presensia/internal/app/migrations"
	appRepos "presensia/internal/app/repositories"
	appRoutes "presensia/internal/app/routes"
	appServices "presensia/internal/app/services"
	"presensia/internal/config"
	"presensia/internal/db"
	appMiddleware "presensia/internal/middleware"
	pkgAuth "presensia/internal/pkg/auth"
	"presensia/internal/pkg/helpers"
	"presensia/internal/pkg/logger"
	"presensia/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	ScheduleService   appServices.ScheduleService
	HolidayService    appServices.HolidayService
	AttendanceService appServices.AttendanceService
	ReportService     appServices.ReportService
	StudentService    appServices.StudentService
	ClassroomService  appServices.ClassroomService

	AuthController       *appControllers.AuthController
	ScheduleController   *appControllers.ScheduleController
	HolidayController    *appControllers.HolidayController
	AttendanceController *appControllers.AttendanceController
	ReportController     *appControllers.ReportController
	StudentController    *appControllers.StudentController
	ClassroomController  *appControllers.ClassroomController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// The weekday schedule must exist before the repositories load it, so
	// seeding failures are fatal here, unlike optional default data.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data")
		return nil, fmt.Errorf("default data seeding failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The schedule table is served from memory; load it once at startup.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Repos.Schedules.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load weekday schedule: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiry, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.Schedules)
	deps.HolidayService = appServices.NewHolidayService(deps.Repos.Holidays, deps.Repos.Classrooms)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.Attendance,
		deps.Repos.Students,
		deps.Repos.Schedules,
		deps.Repos.Holidays,
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.Attendance,
		deps.Repos.Students,
		deps.Repos.Classrooms,
		deps.Repos.Schedules,
		deps.Repos.Holidays,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Students, deps.Repos.Classrooms)
	deps.ClassroomService = appServices.NewClassroomService(deps.Repos.Classrooms)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.HolidayController = appControllers.NewHolidayController(deps.HolidayService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ScheduleController,
		deps.HolidayController,
		deps.AttendanceController,
		deps.ReportController,
		deps.StudentController,
		deps.ClassroomController,
		deps.AuthMiddleware,
	)

	return router
}
