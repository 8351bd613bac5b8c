// Package app is the application layer: it orchestrates the repository into
// the service's use cases (get-or-create, upsert) and owns the race handling
// around first-time creation.
package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
)

type Service struct {
	dashboards    domain.DashboardRepository
	creationGroup singleflight.Group
}

// NewService creates the application layer service.
func NewService(dashboards domain.DashboardRepository) *Service {
	return &Service{dashboards: dashboards}
}

// GetOrCreate returns the dashboard for (userID, dashboardID), creating one
// with an empty layout on first access. Concurrent first reads for the same
// key are collapsed in-process through singleflight; across processes the
// unique index decides, and losing the insert race falls back to reading the
// winner instead of failing.
func (s *Service) GetOrCreate(ctx context.Context, userID, dashboardID string) (*domain.Dashboard, error) {
	dashboard, err := s.dashboards.Find(ctx, userID, dashboardID)
	if err == nil {
		return dashboard, nil
	}
	if !errors.Is(err, domain.ErrDashboardNotFound) {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	v, err, _ := s.creationGroup.Do(creationKey(userID, dashboardID), func() (any, error) {
		created, err := s.dashboards.InsertDefault(ctx, userID, dashboardID)
		if errors.Is(err, domain.ErrDashboardExists) {
			// Lost the insert race to another process; the winner's document
			// is the one to return.
			return s.dashboards.Find(ctx, userID, dashboardID)
		}
		return created, err
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Dashboard), nil
}

// Upsert replaces the layout for (userID, dashboardID), creating the document
// if absent, then re-reads it. The re-read is a separate operation and is not
// atomic with the write under concurrent modification.
func (s *Service) Upsert(ctx context.Context, userID, dashboardID string, layout []domain.Widget) (*domain.Dashboard, bool, error) {
	created, err := s.dashboards.Upsert(ctx, userID, dashboardID, layout)
	if err != nil {
		return nil, false, err
	}

	dashboard, err := s.dashboards.Find(ctx, userID, dashboardID)
	if err != nil {
		return nil, created, fmt.Errorf("failed to load dashboard after upsert: %w", err)
	}

	return dashboard, created, nil
}

func creationKey(userID, dashboardID string) string {
	return userID + "\x00" + dashboardID
}
