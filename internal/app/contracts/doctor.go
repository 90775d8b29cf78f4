package contracts

import (
	"context"
	"telemed-service/internal/app/models"
)

type DoctorRepository interface {
	// UpsertProfile replaces the whole stored document for profile.Email,
	// creating it when absent. Field-level merges are never performed.
	UpsertProfile(ctx context.Context, profile *models.DoctorProfile) error
	FindByEmail(ctx context.Context, email string) (*models.DoctorProfile, error)
	FindAll(ctx context.Context) ([]models.DoctorProfile, error)
}
