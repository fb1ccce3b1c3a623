package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_schedule_store.go -package=mocks gimnasio/internal/service ScheduleStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_schedule_service.go -package=mocks gimnasio/internal/service ScheduleService

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/storage"
)

// Weekdays accepted as DayOfWeek, in calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

const clockLayout = "15:04"

// ScheduleStore persists schedules.
type ScheduleStore interface {
	Create(ctx context.Context, schedule storage.ScheduleRecord) (storage.ScheduleRecord, error)
	GetByID(ctx context.Context, id int64) (storage.ScheduleRecord, error)
	ListAll(ctx context.Context) ([]storage.ScheduleRecord, error)
	ListByCoach(ctx context.Context, coachID int64) ([]storage.ScheduleRecord, error)
	CountByCoach(ctx context.Context, coachID int64) (int, error)
	Update(ctx context.Context, schedule storage.ScheduleRecord) (storage.ScheduleRecord, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleRequest carries the fields of a create or update.
type ScheduleRequest struct {
	DayOfWeek string
	StartTime string
	EndTime   string
	CoachID   int64
}

// Schedule is a weekly class slot run by a coach.
type Schedule struct {
	ID        int64
	DayOfWeek string
	StartTime string
	EndTime   string
	Coach     User
}

// ScheduleService manages schedules.
type ScheduleService interface {
	List(ctx context.Context) ([]Schedule, error)
	Get(ctx context.Context, id int64) (Schedule, error)
	// ListByCoach returns ErrNotFound when no coach has the given id.
	ListByCoach(ctx context.Context, coachID int64) ([]Schedule, error)
	Create(ctx context.Context, req ScheduleRequest) (Schedule, error)
	Update(ctx context.Context, id int64, req ScheduleRequest) (Schedule, error)
	Delete(ctx context.Context, id int64) error
}

type scheduleService struct {
	schedules ScheduleStore
	users     UserStore
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(schedules ScheduleStore, users UserStore) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		users:     users,
	}
}

func (s *scheduleService) List(ctx context.Context) ([]Schedule, error) {
	records, err := s.schedules.ListAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list schedules")
	}
	return toSchedules(records), nil
}

func (s *scheduleService) Get(ctx context.Context, id int64) (Schedule, error) {
	record, err := s.schedules.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Schedule{}, ErrNotFound
	}
	if err != nil {
		return Schedule{}, WrapError(err, "failed to get schedule")
	}
	return toSchedule(record), nil
}

func (s *scheduleService) ListByCoach(ctx context.Context, coachID int64) ([]Schedule, error) {
	coach, err := s.users.GetByID(ctx, coachID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to get coach")
	}
	if coach.Role != RoleCoach {
		return nil, ErrNotFound
	}

	records, err := s.schedules.ListByCoach(ctx, coachID)
	if err != nil {
		return nil, WrapError(err, "failed to list schedules")
	}
	return toSchedules(records), nil
}

func (s *scheduleService) Create(ctx context.Context, req ScheduleRequest) (Schedule, error) {
	logger := contextutil.LoggerFromContext(ctx)

	req, err := s.validate(ctx, req)
	if err != nil {
		logger.WarnContext(ctx, "invalid schedule request", "error", err)
		return Schedule{}, err
	}

	record, err := s.schedules.Create(ctx, storage.ScheduleRecord{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CoachID:   req.CoachID,
	})
	if errors.Is(err, storage.ErrReferenced) {
		return Schedule{}, &ValidationError{Field: "coach_id", Message: "coach does not exist"}
	}
	if err != nil {
		return Schedule{}, WrapError(err, "failed to create schedule")
	}

	logger.InfoContext(ctx, "schedule created", "schedule_id", record.ID, "coach_id", record.CoachID)
	return toSchedule(record), nil
}

func (s *scheduleService) Update(ctx context.Context, id int64, req ScheduleRequest) (Schedule, error) {
	logger := contextutil.LoggerFromContext(ctx)

	req, err := s.validate(ctx, req)
	if err != nil {
		logger.WarnContext(ctx, "invalid schedule request", "schedule_id", id, "error", err)
		return Schedule{}, err
	}

	record, err := s.schedules.Update(ctx, storage.ScheduleRecord{
		ID:        id,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CoachID:   req.CoachID,
	})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return Schedule{}, ErrNotFound
	case errors.Is(err, storage.ErrReferenced):
		return Schedule{}, &ValidationError{Field: "coach_id", Message: "coach does not exist"}
	case err != nil:
		return Schedule{}, WrapError(err, "failed to update schedule")
	}

	logger.InfoContext(ctx, "schedule updated", "schedule_id", id)
	return toSchedule(record), nil
}

func (s *scheduleService) Delete(ctx context.Context, id int64) error {
	err := s.schedules.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return WrapError(err, "failed to delete schedule")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "schedule deleted", "schedule_id", id)
	return nil
}

// validate normalizes day and times and checks the coach.
func (s *scheduleService) validate(ctx context.Context, req ScheduleRequest) (ScheduleRequest, error) {
	req.DayOfWeek = strings.ToLower(strings.TrimSpace(req.DayOfWeek))
	if !slices.Contains(Weekdays, req.DayOfWeek) {
		return req, &ValidationError{Field: "day_of_week", Message: "must be a weekday name from monday to sunday"}
	}

	start, err := time.Parse(clockLayout, strings.TrimSpace(req.StartTime))
	if err != nil {
		return req, &ValidationError{Field: "start_time", Message: "must use HH:MM"}
	}
	end, err := time.Parse(clockLayout, strings.TrimSpace(req.EndTime))
	if err != nil {
		return req, &ValidationError{Field: "end_time", Message: "must use HH:MM"}
	}
	if !start.Before(end) {
		return req, &ValidationError{Field: "end_time", Message: "must be after start_time"}
	}
	req.StartTime = start.Format(clockLayout)
	req.EndTime = end.Format(clockLayout)

	if req.CoachID <= 0 {
		return req, &ValidationError{Field: "coach_id", Message: "is required"}
	}
	coach, err := s.users.GetByID(ctx, req.CoachID)
	if errors.Is(err, storage.ErrNotFound) {
		return req, &ValidationError{Field: "coach_id", Message: "coach does not exist"}
	}
	if err != nil {
		return req, WrapError(err, "failed to get coach")
	}
	if coach.Role != RoleCoach {
		return req, &ValidationError{Field: "coach_id", Message: "user is not a coach"}
	}
	return req, nil
}

func toSchedule(record storage.ScheduleRecord) Schedule {
	return Schedule{
		ID:        record.ID,
		DayOfWeek: record.DayOfWeek,
		StartTime: record.StartTime,
		EndTime:   record.EndTime,
		Coach:     toUser(record.Coach),
	}
}

func toSchedules(records []storage.ScheduleRecord) []Schedule {
	schedules := make([]Schedule, 0, len(records))
	for _, record := range records {
		schedules = append(schedules, toSchedule(record))
	}
	return schedules
}
