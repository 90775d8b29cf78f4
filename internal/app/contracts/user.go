package contracts

import (
	"context"
	"telemed-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
