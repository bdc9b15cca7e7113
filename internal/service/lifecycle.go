// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keymint/keymint/internal/auth"
	"github.com/keymint/keymint/internal/cache"
	"github.com/keymint/keymint/internal/metrics"
	"github.com/keymint/keymint/internal/model"
	"github.com/keymint/keymint/internal/repository"
)

// Service errors.
var (
	ErrMissingKey   = errors.New("api key is required")
	ErrUserNotFound = errors.New("user not found")
)

// LifecycleService orchestrates API key issuance and the key/user lifecycle.
// A user row never outlives its key row and vice versa: both sides of the
// pair are written and deleted atomically.
type LifecycleService struct {
	repo         *repository.Repository
	cache        *cache.Cache
	issuedKeyTTL time.Duration
	metrics      metrics.Recorder
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(repo *repository.Repository, c *cache.Cache, issuedKeyTTL time.Duration, recorder metrics.Recorder) *LifecycleService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &LifecycleService{
		repo:         repo,
		cache:        c,
		issuedKeyTTL: issuedKeyTTL,
		metrics:      recorder,
	}
}

// IssueKey generates a new opaque API key without persisting it.
// Issuance and persistence are decoupled: the key is shown to the caller
// first and only stored once a user registers with it.
//
// The last issued key is mirrored into a TTL'd Redis slot as a convenience;
// the slot is not authoritative and failures to write it are ignored.
func (s *LifecycleService) IssueKey(ctx context.Context) (string, error) {
	key, err := auth.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to issue key: %w", err)
	}

	if s.cache != nil {
		// Best effort only
		_ = s.cache.SetLastIssuedKey(ctx, key, s.issuedKeyTTL)
	}

	s.metrics.IncKeyIssued()

	return key, nil
}

// RegisterUserInput defines input for registering a user.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Key       string
}

// RegisterUser persists the API key and a user record referencing it.
// The key row is stamped with the current time; both inserts happen in one
// transaction so a failed user insert leaves no orphaned key.
func (s *LifecycleService) RegisterUser(ctx context.Context, input RegisterUserInput) (*model.User, error) {
	if input.Key == "" {
		return nil, ErrMissingKey
	}

	user := &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	if err := s.repo.CreateUserWithKey(ctx, user, input.Key, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// RemoveUser deletes a user and its referenced API key.
// Both deletes happen in one transaction with a row lock on the user, so
// two concurrent removals of the same id resolve to exactly one deletion
// and one ErrUserNotFound.
func (s *LifecycleService) RemoveUser(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteUserWithKey(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to remove user: %w", err)
	}

	s.metrics.IncUserRemoved()

	return nil
}
