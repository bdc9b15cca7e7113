package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/keymint/keymint/internal/auth"
	"github.com/keymint/keymint/internal/metrics"
	"github.com/keymint/keymint/internal/model"
	"github.com/keymint/keymint/internal/repository"
)

// Admin service errors.
var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnauthorized = errors.New("invalid email or password")
)

// unknownAdminDigest is a bcrypt digest of a filler value. Login verifies
// against it when the email is unknown so both failure modes spend one
// bcrypt comparison and response timing does not reveal account existence.
const unknownAdminDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AdminService registers admin credentials and verifies login attempts.
type AdminService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo *repository.Repository, recorder metrics.Recorder) *AdminService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AdminService{
		repo:    repo,
		metrics: recorder,
	}
}

// Register hashes the password with bcrypt and stores the admin account.
// Returns ErrEmailTaken if the email is already registered.
func (s *AdminService) Register(ctx context.Context, email, password string) (*model.Admin, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: digest,
	}

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAdminEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}

	s.metrics.IncAdminRegistered()

	return admin, nil
}

// Login verifies the email/password pair against the stored digest.
// An unknown email and a wrong password both return ErrUnauthorized so the
// two cases are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			auth.VerifyPassword(password, unknownAdminDigest)
			s.metrics.IncAdminLogin(metrics.LoginFailure)
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !auth.VerifyPassword(password, admin.PasswordHash) {
		s.metrics.IncAdminLogin(metrics.LoginFailure)
		return nil, ErrUnauthorized
	}

	s.metrics.IncAdminLogin(metrics.LoginSuccess)

	return admin, nil
}
