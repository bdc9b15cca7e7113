package service

import (
	"context"
	"fmt"
	"time"

	"github.com/keymint/keymint/internal/metrics"
	"github.com/keymint/keymint/internal/model"
	"github.com/keymint/keymint/internal/repository"
)

// Dashboard aggregates all users and all API keys enriched with status.
type Dashboard struct {
	Users   []*model.User          `json:"users"`
	APIKeys []model.EnrichedAPIKey `json:"apikeys"`
}

// DashboardService reads users and keys and derives per-key status.
type DashboardService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.Repository, recorder metrics.Recorder) *DashboardService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &DashboardService{
		repo:    repo,
		metrics: recorder,
	}
}

// GetDashboard returns all users and all API keys with derived status.
// Both listings must succeed; if either fails no partial result is returned.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveDashboardDuration(time.Since(start))
	}()

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard users: %w", err)
	}

	keys, err := s.repo.ListAPIKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard API keys: %w", err)
	}

	now := time.Now()
	enriched := make([]model.EnrichedAPIKey, 0, len(keys))
	for _, key := range keys {
		enriched = append(enriched, key.Enrich(now))
	}

	if users == nil {
		users = []*model.User{}
	}

	return &Dashboard{
		Users:   users,
		APIKeys: enriched,
	}, nil
}
