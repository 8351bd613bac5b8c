package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Techprecient-Open/ic-userdashboard-poc/internal/domain"
)

// CreateTestDashboard seeds a dashboard with the given layout for testing.
func CreateTestDashboard(t *testing.T, repo *DashboardRepo, userID, dashboardID string, layout []domain.Widget) *domain.Dashboard {
	t.Helper()

	ctx := context.Background()
	_, err := repo.Upsert(ctx, userID, dashboardID, layout)
	require.NoError(t, err)

	dashboard, err := repo.Find(ctx, userID, dashboardID)
	require.NoError(t, err)

	return dashboard
}
