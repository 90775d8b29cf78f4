package auth

import (
	"context"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, token string) error
}
