package storage

import (
	"context"
	"database/sql"
	"errors"
)

const userColumns = "id, name, email, password_hash, phone, role, registered_at"

// UserRepo provides methods for user operations.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts user and returns it with its generated id.
func (r *UserRepo) Create(ctx context.Context, user UserRecord) (UserRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, phone, role, registered_at) VALUES (?, ?, ?, ?, ?, ?)",
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Role, user.RegisteredAt.UTC(),
	)
	if err != nil {
		return UserRecord{}, translateError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return UserRecord{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID returns the user with the given id, or ErrNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (UserRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return UserRecord{}, ErrNotFound
	}
	return user, err
}

// ListAll returns all users ordered by id.
func (r *UserRepo) ListAll(ctx context.Context) ([]UserRecord, error) {
	return r.query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
}

// ListByRole returns the users with the given role ordered by name.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]UserRecord, error) {
	return r.query(ctx, "SELECT "+userColumns+" FROM users WHERE role = ? ORDER BY name, id", role)
}

// Update overwrites the mutable fields of user. RegisteredAt is left untouched.
func (r *UserRepo) Update(ctx context.Context, user UserRecord) (UserRecord, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, password_hash = ?, phone = ?, role = ? WHERE id = ?",
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Role, user.ID,
	)
	if err != nil {
		return UserRecord{}, translateError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return UserRecord{}, err
	}
	if affected == 0 {
		return UserRecord{}, ErrNotFound
	}

	return r.GetByID(ctx, user.ID)
}

// Delete removes the user with the given id.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
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

func (r *UserRepo) query(ctx context.Context, query string, args ...any) ([]UserRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []UserRecord{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (UserRecord, error) {
	var user UserRecord
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &user.Role, &user.RegisteredAt)
	return user, err
}
