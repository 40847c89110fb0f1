package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "presensia/internal/app/models"
	appRepos "presensia/internal/app/repositories"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/auth"
)

// defaultSlotCounts holds the slot count per weekday, Monday first.
// Friday is shortened for the communal prayer; Sunday is not a school day.
var defaultSlotCounts = [7]int{6, 6, 6, 6, 4, 6, 0}

// CreateDefaultData seeds the 7 weekday schedule rows and the default
// admin account. Idempotent: existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	scheduleRepo := appRepos.NewScheduleRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (schedule/admin)...")
	var finalErr error

	// --- Weekday schedule --- //
	for weekday := 0; weekday < 7; weekday++ {
		schedule := &appModels.DaySchedule{
			Weekday:     weekday,
			DayName:     appModels.DayNames[weekday],
			SlotCount:   defaultSlotCounts[weekday],
			IsSchoolDay: defaultSlotCounts[weekday] > 0,
		}
		if err := scheduleRepo.Create(ctx, schedule); err != nil {
			lgr.Error().Err(err).Int("weekday", weekday).Msg("Error seeding day schedule")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default admin user --- //
	exists, err := userRepo.UsernameExists(ctx, "admin")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword("Admin123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Username: "admin",
				Password: hashedPassword,
				FullName: "Administrator",
				RoleType: appModels.RoleAdmin,
				IsActive: true,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else if err == nil {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
