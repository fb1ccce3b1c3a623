package storage

import (
	"context"
	"database/sql"
	"errors"
)

const scheduleSelect = `SELECT s.id, s.day_of_week, s.start_time, s.end_time, s.coach_id,
	u.id, u.name, u.email, u.password_hash, u.phone, u.role, u.registered_at
	FROM schedules s JOIN users u ON u.id = s.coach_id`

// ScheduleRepo provides methods for schedule operations.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo creates a new ScheduleRepo.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// Create inserts schedule and returns it joined with its coach.
// A coach id with no matching user yields ErrReferenced.
func (r *ScheduleRepo) Create(ctx context.Context, schedule ScheduleRecord) (ScheduleRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO schedules (day_of_week, start_time, end_time, coach_id) VALUES (?, ?, ?, ?)",
		schedule.DayOfWeek, schedule.StartTime, schedule.EndTime, schedule.CoachID,
	)
	if err != nil {
		return ScheduleRecord{}, translateError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ScheduleRecord{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID returns the schedule with the given id, or ErrNotFound.
func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (ScheduleRecord, error) {
	row := r.db.QueryRowContext(ctx, scheduleSelect+" WHERE s.id = ?", id)
	schedule, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ScheduleRecord{}, ErrNotFound
	}
	return schedule, err
}

// ListAll returns every schedule ordered by weekday and start time.
func (r *ScheduleRepo) ListAll(ctx context.Context) ([]ScheduleRecord, error) {
	return r.query(ctx, scheduleSelect+" ORDER BY "+weekdayOrder+", s.start_time, s.id")
}

// ListByCoach returns the schedules of one coach.
func (r *ScheduleRepo) ListByCoach(ctx context.Context, coachID int64) ([]ScheduleRecord, error) {
	return r.query(ctx, scheduleSelect+" WHERE s.coach_id = ? ORDER BY "+weekdayOrder+", s.start_time, s.id", coachID)
}

// CountByCoach returns how many schedules reference the coach.
func (r *ScheduleRepo) CountByCoach(ctx context.Context, coachID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schedules WHERE coach_id = ?", coachID).Scan(&count)
	return count, err
}

// Update overwrites schedule by id.
func (r *ScheduleRepo) Update(ctx context.Context, schedule ScheduleRecord) (ScheduleRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE schedules SET day_of_week = ?, start_time = ?, end_time = ?, coach_id = ? WHERE id = ?",
		schedule.DayOfWeek, schedule.StartTime, schedule.EndTime, schedule.CoachID, schedule.ID,
	)
	if err != nil {
		return ScheduleRecord{}, translateError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ScheduleRecord{}, err
	}
	if affected == 0 {
		return ScheduleRecord{}, ErrNotFound
	}

	return r.GetByID(ctx, schedule.ID)
}

// Delete removes the schedule with the given id.
func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM schedules WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const weekdayOrder = `CASE s.day_of_week
	WHEN 'monday' THEN 1 WHEN 'tuesday' THEN 2 WHEN 'wednesday' THEN 3
	WHEN 'thursday' THEN 4 WHEN 'friday' THEN 5 WHEN 'saturday' THEN 6
	WHEN 'sunday' THEN 7 ELSE 8 END`

func (r *ScheduleRepo) query(ctx context.Context, query string, args ...any) ([]ScheduleRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []ScheduleRecord{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func scanSchedule(row rowScanner) (ScheduleRecord, error) {
	var s ScheduleRecord
	err := row.Scan(
		&s.ID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.CoachID,
		&s.Coach.ID, &s.Coach.Name, &s.Coach.Email, &s.Coach.PasswordHash,
		&s.Coach.Phone, &s.Coach.Role, &s.Coach.RegisteredAt,
	)
	return s, err
}
