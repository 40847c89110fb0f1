package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"presensia/internal/app/models"
	"presensia/internal/db"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/dberrors"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so single-record
// statements can run standalone or inside a bulk transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AttendanceRepository persists per-day attendance records. The unique
// (student_id, date) constraint in the database is the source of truth;
// every write goes through an atomic upsert rather than a read-then-write.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Upsert inserts the record or, if one already exists for the same
// (student, date), overwrites its statuses, notes and recorder while
// keeping the original id and created-by stamps. Returns whether a new
// row was created.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) (bool, error) {
	return upsertRecord(ctx, r.db, record)
}

// BulkUpsert applies all records in a single transaction. Either every
// record lands or none does. Returns how many rows were newly created
// (the rest were overwrites).
func (r *AttendanceRepository) BulkUpsert(ctx context.Context, records []*models.AttendanceRecord) (int, error) {
	created := 0
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, record := range records {
			inserted, err := upsertRecord(ctx, tx, record)
			if err != nil {
				return err
			}
			if inserted {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func upsertRecord(ctx context.Context, q querier, record *models.AttendanceRecord) (bool, error) {
	statuses, err := json.Marshal(record.SlotStatuses)
	if err != nil {
		return false, fmt.Errorf("error encoding slot statuses: %w", err)
	}

	// xmax = 0 distinguishes a fresh insert from a conflict update.
	var inserted bool
	err = q.QueryRow(ctx, `
		INSERT INTO attendance_records (id, student_id, date, slot_statuses, notes, recorded_by, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), $6, $6)
		ON CONFLICT ON CONSTRAINT attendance_records_student_date_key
		DO UPDATE SET
			slot_statuses = EXCLUDED.slot_statuses,
			notes = EXCLUDED.notes,
			recorded_by = EXCLUDED.recorded_by,
			updated_at = NOW(),
			updated_by = EXCLUDED.updated_by
		RETURNING id, created_at, updated_at, created_by, updated_by, (xmax = 0)
	`, record.ID, record.StudentID, record.Date, statuses, record.Notes, record.RecordedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt, &record.CreatedBy, &record.UpdatedBy, &inserted)
	if err != nil {
		// ON CONFLICT absorbs (student, date) races; a 23505 still
		// escaping here comes from another unique index and is retryable.
		if dberrors.IsUniqueViolation(err) {
			return false, apperrors.ErrUniquenessConflict
		}
		return false, fmt.Errorf("error upserting attendance record: %w", err)
	}
	return inserted, nil
}

// Get returns the record for (student, date), or nil when none exists.
// An unrecorded day is a normal state, not an error.
func (r *AttendanceRepository) Get(ctx context.Context, studentID uuid.UUID, date time.Time) (*models.AttendanceRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, student_id, date, slot_statuses, notes, recorded_by, created_at, updated_at, created_by, updated_by
		FROM attendance_records
		WHERE student_id = $1 AND date = $2
	`, studentID, date)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting attendance record: %w", err)
	}
	return record, nil
}

// RangeForStudent returns the student's records with date in [start, end],
// oldest first.
func (r *AttendanceRepository) RangeForStudent(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, date, slot_statuses, notes, recorded_by, created_at, updated_at, created_by, updated_by
		FROM attendance_records
		WHERE student_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`, studentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing student attendance: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// RangeForClassroom returns records in [start, end] for every active
// student of the classroom, with the student relation populated.
func (r *AttendanceRepository) RangeForClassroom(ctx context.Context, classroomID uuid.UUID, start, end time.Time) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.date, a.slot_statuses, a.notes, a.recorded_by,
		       a.created_at, a.updated_at, a.created_by, a.updated_by,
		       s.id, s.student_number, s.nisn, s.name, s.classroom_id, s.is_active, s.created_at, s.updated_at
		FROM attendance_records a
		JOIN students s ON s.id = a.student_id
		WHERE s.classroom_id = $1 AND s.is_active AND a.date BETWEEN $2 AND $3
		ORDER BY a.date, s.name
	`, classroomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error listing classroom attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		var student models.Student
		var statuses []byte
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.Date, &statuses, &rec.Notes, &rec.RecordedBy,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.CreatedBy, &rec.UpdatedBy,
			&student.ID, &student.StudentID, &student.NISN, &student.Name,
			&student.ClassroomID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning classroom attendance: %w", err)
		}
		if err := json.Unmarshal(statuses, &rec.SlotStatuses); err != nil {
			return nil, fmt.Errorf("error decoding slot statuses: %w", err)
		}
		rec.Student = &student
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// RecordedDates returns, per date in [start, end], how many of the
// classroom's active students have a record. Drives the missing-day check.
func (r *AttendanceRepository) RecordedDates(ctx context.Context, classroomID uuid.UUID, start, end time.Time) (map[time.Time]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.date, COUNT(*)
		FROM attendance_records a
		JOIN students s ON s.id = a.student_id
		WHERE s.classroom_id = $1 AND s.is_active AND a.date BETWEEN $2 AND $3
		GROUP BY a.date
	`, classroomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error counting recorded dates: %w", err)
	}
	defer rows.Close()

	counts := make(map[time.Time]int)
	for rows.Next() {
		var d time.Time
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, fmt.Errorf("error scanning recorded date: %w", err)
		}
		counts[d.UTC().Truncate(24*time.Hour)] = n
	}
	return counts, rows.Err()
}

func scanRecord(row pgx.Row) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	var statuses []byte
	if err := row.Scan(&rec.ID, &rec.StudentID, &rec.Date, &statuses, &rec.Notes, &rec.RecordedBy,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.CreatedBy, &rec.UpdatedBy); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(statuses, &rec.SlotStatuses); err != nil {
		return nil, fmt.Errorf("error decoding slot statuses: %w", err)
	}
	return &rec, nil
}

func scanRecords(rows pgx.Rows) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
