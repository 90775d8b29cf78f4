package doctors

import (
	"context"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	UpsertProfile(ctx context.Context, session *models.Session, request *requests.UpsertDoctorProfile) (*responses.DoctorProfile, error)
	ListProfiles(ctx context.Context) ([]responses.DoctorProfile, error)
	GetProfile(ctx context.Context, email string) (*responses.DoctorProfile, error)
}
