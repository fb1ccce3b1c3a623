package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_user_store.go -package=mocks gimnasio/internal/service UserStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_user_service.go -package=mocks gimnasio/internal/service UserService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/storage"
)

// Roles a user can hold.
const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RoleMember = "member"

	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

var validRoles = map[string]bool{RoleAdmin: true, RoleCoach: true, RoleMember: true}

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user storage.UserRecord) (storage.UserRecord, error)
	GetByID(ctx context.Context, id int64) (storage.UserRecord, error)
	ListAll(ctx context.Context) ([]storage.UserRecord, error)
	ListByRole(ctx context.Context, role string) ([]storage.UserRecord, error)
	Update(ctx context.Context, user storage.UserRecord) (storage.UserRecord, error)
	Delete(ctx context.Context, id int64) error
}

// UserRequest carries the fields of a create or update.
type UserRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

// User is a gym user. The password hash never leaves the service.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Role         string
	RegisteredAt time.Time
}

// UserService manages users and coaches.
type UserService interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, req UserRequest) (User, error)
	Update(ctx context.Context, id int64, req UserRequest) (User, error)
	// Delete fails with ErrConflict for a coach that still has schedules.
	Delete(ctx context.Context, id int64) error
	// ListCoaches returns the users with the coach role.
	ListCoaches(ctx context.Context) ([]User, error)
}

type userService struct {
	users     UserStore
	schedules ScheduleStore
	hashCost  int
	now       func() time.Time
}

// NewUserService creates a UserService.
func NewUserService(users UserStore, schedules ScheduleStore) UserService {
	return &userService{
		users:     users,
		schedules: schedules,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}
}

func (s *userService) List(ctx context.Context) ([]User, error) {
	records, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list users")
	}
	return toUsers(records), nil
}

func (s *userService) ListCoaches(ctx context.Context) ([]User, error) {
	records, err := s.users.ListByRole(ctx, RoleCoach)
	if err != nil {
		return nil, WrapError(err, "failed to list coaches")
	}
	return toUsers(records), nil
}

func (s *userService) Get(ctx context.Context, id int64) (User, error) {
	record, err := s.users.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, WrapError(err, "failed to get user")
	}
	return toUser(record), nil
}

func (s *userService) Create(ctx context.Context, req UserRequest) (User, error) {
	logger := contextutil.LoggerFromContext(ctx)

	req, err := normalizeUserRequest(req)
	if err != nil {
		logger.WarnContext(ctx, "invalid user request", "error", err)
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return User{}, WrapError(err, "failed to hash password")
	}

	record, err := s.users.Create(ctx, storage.UserRecord{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         req.Role,
		RegisteredAt: s.now().UTC(),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return User{}, fmt.Errorf("%w: email %s is already registered", ErrConflict, req.Email)
	}
	if err != nil {
		return User{}, WrapError(err, "failed to create user")
	}

	logger.InfoContext(ctx, "user created", "user_id", record.ID, "role", record.Role)
	return toUser(record), nil
}

func (s *userService) Update(ctx context.Context, id int64, req UserRequest) (User, error) {
	logger := contextutil.LoggerFromContext(ctx)

	req, err := normalizeUserRequest(req)
	if err != nil {
		logger.WarnContext(ctx, "invalid user request", "user_id", id, "error", err)
		return User{}, err
	}

	current, err := s.users.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, WrapError(err, "failed to get user")
	}

	if current.Role == RoleCoach && req.Role != RoleCoach {
		if err := s.ensureNoSchedules(ctx, id); err != nil {
			return User{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return User{}, WrapError(err, "failed to hash password")
	}

	record, err := s.users.Update(ctx, storage.UserRecord{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         req.Role,
	})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return User{}, ErrNotFound
	case errors.Is(err, storage.ErrDuplicate):
		return User{}, fmt.Errorf("%w: email %s is already registered", ErrConflict, req.Email)
	case err != nil:
		return User{}, WrapError(err, "failed to update user")
	}

	logger.InfoContext(ctx, "user updated", "user_id", id)
	return toUser(record), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	logger := contextutil.LoggerFromContext(ctx)

	current, err := s.users.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return WrapError(err, "failed to get user")
	}

	if current.Role == RoleCoach {
		if err := s.ensureNoSchedules(ctx, id); err != nil {
			return err
		}
	}

	err = s.users.Delete(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrReferenced):
		return fmt.Errorf("%w: user %d is still referenced", ErrConflict, id)
	case err != nil:
		return WrapError(err, "failed to delete user")
	}

	logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

func (s *userService) ensureNoSchedules(ctx context.Context, coachID int64) error {
	count, err := s.schedules.CountByCoach(ctx, coachID)
	if err != nil {
		return WrapError(err, "failed to count schedules")
	}
	if count > 0 {
		return fmt.Errorf("%w: coach %d still has %d schedules", ErrConflict, coachID, count)
	}
	return nil
}

// normalizeUserRequest trims every field, lower-cases email and role and
// checks that nothing is missing.
func normalizeUserRequest(req UserRequest) (UserRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"password", strings.TrimSpace(req.Password)},
		{"phone", req.Phone},
		{"role", req.Role},
	}
	for _, r := range required {
		if r.value == "" {
			return req, &ValidationError{Field: r.field, Message: "is required"}
		}
	}

	// bcrypt rejects longer inputs.
	if len(req.Password) > MaxPasswordBytes {
		return req, &ValidationError{Field: "password", Message: fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes)}
	}
	if !validRoles[req.Role] {
		return req, &ValidationError{Field: "role", Message: "must be one of admin, coach, member"}
	}
	return req, nil
}

func toUser(record storage.UserRecord) User {
	return User{
		ID:           record.ID,
		Name:         record.Name,
		Email:        record.Email,
		Phone:        record.Phone,
		Role:         record.Role,
		RegisteredAt: record.RegisteredAt,
	}
}

func toUsers(records []storage.UserRecord) []User {
	users := make([]User, 0, len(records))
	for _, record := range records {
		users = append(users, toUser(record))
	}
	return users
}
