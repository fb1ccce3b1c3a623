package storage

import "time"

// UserRecord is a row of the users table.
type UserRecord struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	RegisteredAt time.Time
}

// ScheduleRecord is a row of the schedules table joined with its coach.
type ScheduleRecord struct {
	ID        int64
	DayOfWeek string
	StartTime string // HH:MM
	EndTime   string // HH:MM
	CoachID   int64
	Coach     UserRecord
}

// RoutineRecord is an archived workout routine.
type RoutineRecord struct {
	ID        string // UUID, also the Qdrant point id
	Goal      string
	Level     string
	Duration  string
	Content   string
	Model     string
	CreatedAt time.Time
}
