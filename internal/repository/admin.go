package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/keymint/keymint/internal/model"
)

// Common errors for admin repository operations.
var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrAdminEmailExists = errors.New("admin email already exists")
)

// CreateAdmin inserts a new admin account.
// The password column stores the bcrypt digest, never the plaintext.
func (r *Repository) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	query := `
		INSERT INTO admin (email, password)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, admin.Email, admin.PasswordHash).Scan(&admin.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrAdminEmailExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// GetAdminByEmail retrieves an admin account by email address.
func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
		SELECT id, email, password
		FROM admin
		WHERE email = $1
	`

	var admin model.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return &admin, nil
}
