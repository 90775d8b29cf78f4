package auth

import (
	"context"
	"fmt"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyRegistered(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      request.Role,
		CreatedAt: time.Now(),
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := models.Session{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}

	sessionID := uuid.NewString()
	sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	sessionTTL := time.Duration(uc.InternalConfig.App.SessionExpTimeInHour) * time.Hour
	err = uc.RedisRepository.Set(ctx, sessionKey, session, sessionTTL)
	if err != nil {
		return nil, exceptions.ErrRedisStoreSession(err)
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.LoginUser{
		Token: token,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, token string) error {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return exceptions.ErrTokenInvalidOrExpired(err)
	}

	sessionKey := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}
