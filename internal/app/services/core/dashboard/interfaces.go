package dashboard

import (
	"context"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, session *models.Session) (*responses.Dashboard, error)
}
