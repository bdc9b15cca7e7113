package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/keymint/keymint/internal/model"
)

// CreateAPIKey inserts a new API key and returns its store-assigned id.
// The out_of_date column carries the creation timestamp.
func (r *Repository) CreateAPIKey(ctx context.Context, key string, createdAt time.Time) (int64, error) {
	query := `
		INSERT INTO apikey (key, out_of_date)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	if err := r.pool.QueryRow(ctx, query, key, createdAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create API key: %w", err)
	}

	return id, nil
}

// DeleteAPIKey deletes an API key row.
// Deleting a nonexistent key is not an error.
func (r *Repository) DeleteAPIKey(ctx context.Context, id int64) error {
	query := `DELETE FROM apikey WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}

	return nil
}

// ListAPIKeys retrieves all API keys ordered by creation time.
func (r *Repository) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	query := `
		SELECT id, key, out_of_date
		FROM apikey
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	defer rows.Close()

	var keys []*model.APIKey
	for rows.Next() {
		var key model.APIKey
		if err := rows.Scan(&key.ID, &key.Key, &key.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan API key: %w", err)
		}
		keys = append(keys, &key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating API keys: %w", err)
	}

	return keys, nil
}
