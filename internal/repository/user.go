package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/keymint/keymint/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
)

// CreateUserWithKey inserts the API key row and the user row referencing it
// in a single transaction. The user never exists without its key; on any
// failure both inserts roll back.
//
// On success user.ID and user.APIKeyID are populated.
func (r *Repository) CreateUserWithKey(ctx context.Context, user *model.User, key string, createdAt time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	keyQuery := `
		INSERT INTO apikey (key, out_of_date)
		VALUES ($1, $2)
		RETURNING id
	`

	var apiKeyID int64
	if err := tx.QueryRow(ctx, keyQuery, key, createdAt).Scan(&apiKeyID); err != nil {
		return fmt.Errorf("failed to create API key: %w", err)
	}

	userQuery := `
		INSERT INTO "user" (first_name, last_name, email, apikey_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var userID int64
	err = tx.QueryRow(ctx, userQuery,
		user.FirstName,
		user.LastName,
		user.Email,
		apiKeyID,
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}

	user.ID = userID
	user.APIKeyID = apiKeyID
	return nil
}

// GetUserAPIKeyID retrieves the API key id referenced by a user.
func (r *Repository) GetUserAPIKeyID(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT apikey_id FROM "user" WHERE id = $1`

	var apiKeyID int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&apiKeyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get user API key id: %w", err)
	}

	return apiKeyID, nil
}

// DeleteUserWithKey deletes the user row and its referenced API key row in a
// single transaction. The read-then-delete sequence runs under a row lock so
// concurrent removals of the same user observe at-most-once deletion: the
// loser sees ErrUserNotFound.
func (r *Repository) DeleteUserWithKey(ctx context.Context, userID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	lookupQuery := `SELECT apikey_id FROM "user" WHERE id = $1 FOR UPDATE`

	var apiKeyID int64
	if err := tx.QueryRow(ctx, lookupQuery, userID).Scan(&apiKeyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM apikey WHERE id = $1`, apiKeyID); err != nil {
		return fmt.Errorf("failed to delete user API key: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit user deletion: %w", err)
	}

	return nil
}

// ListUsers retrieves all users ordered by id.
func (r *Repository) ListUsers(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, first_name, last_name, email, apikey_id
		FROM "user"
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.APIKeyID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
