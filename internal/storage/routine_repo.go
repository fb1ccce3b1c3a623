package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

const routineColumns = "id, goal, level, duration, content, model, created_at"

// RoutineRepo provides methods for archived routine operations.
type RoutineRepo struct {
	db *sql.DB
}

// NewRoutineRepo creates a new RoutineRepo.
func NewRoutineRepo(db *sql.DB) *RoutineRepo {
	return &RoutineRepo{db: db}
}

// Insert stores routine. The caller assigns the id.
func (r *RoutineRepo) Insert(ctx context.Context, routine RoutineRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO routines ("+routineColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		routine.ID, routine.Goal, routine.Level, routine.Duration, routine.Content, routine.Model, routine.CreatedAt.UTC(),
	)
	return translateError(err)
}

// GetByID returns one routine, or ErrNotFound.
func (r *RoutineRepo) GetByID(ctx context.Context, id string) (RoutineRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+routineColumns+" FROM routines WHERE id = ?", id)
	routine, err := scanRoutine(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RoutineRecord{}, ErrNotFound
	}
	return routine, err
}

// ListRecent returns up to limit routines, newest first.
func (r *RoutineRepo) ListRecent(ctx context.Context, limit int) ([]RoutineRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+routineColumns+" FROM routines ORDER BY created_at DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRoutines(rows)
}

// GetByIDs returns the routines whose ids are listed, in the order of ids.
// Unknown ids are skipped.
func (r *RoutineRepo) GetByIDs(ctx context.Context, ids []string) ([]RoutineRecord, error) {
	if len(ids) == 0 {
		return []RoutineRecord{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+routineColumns+" FROM routines WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found, err := collectRoutines(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]RoutineRecord, len(found))
	for _, routine := range found {
		byID[routine.ID] = routine
	}
	ordered := make([]RoutineRecord, 0, len(found))
	for _, id := range ids {
		if routine, ok := byID[id]; ok {
			ordered = append(ordered, routine)
		}
	}
	return ordered, nil
}

// Delete removes one routine, or returns ErrNotFound.
func (r *RoutineRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", id)
	if err != nil {
		return translateError(err)
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

func collectRoutines(rows *sql.Rows) ([]RoutineRecord, error) {
	routines := []RoutineRecord{}
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routines, nil
}

func scanRoutine(row rowScanner) (RoutineRecord, error) {
	var routine RoutineRecord
	err := row.Scan(&routine.ID, &routine.Goal, &routine.Level, &routine.Duration,
		&routine.Content, &routine.Model, &routine.CreatedAt)
	return routine, err
}
