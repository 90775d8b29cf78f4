package doctors

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
}

func NewDoctorUsecase(doctorMongoRepository contracts.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
	}
}

func (uc *doctorUsecase) UpsertProfile(ctx context.Context, session *models.Session, request *requests.UpsertDoctorProfile) (*responses.DoctorProfile, error) {
	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrNotMatchRoleType(nil, constvars.ErrClientOnlyDoctorsCanEditProfile)
	}

	profile := &models.DoctorProfile{
		Email:          session.Email,
		Name:           session.Name,
		Specialization: request.Specialization,
		Experience:     request.Experience,
		Slots:          utils.ParseSlotList(request.Slots),
	}

	err := uc.DoctorRepository.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	response := utils.MapDoctorProfileToResponse(profile)
	return &response, nil
}

func (uc *doctorUsecase) ListProfiles(ctx context.Context) ([]responses.DoctorProfile, error) {
	profiles, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorProfilesToResponse(profiles), nil
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, email string) (*responses.DoctorProfile, error) {
	profile, err := uc.DoctorRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	response := utils.MapDoctorProfileToResponse(profile)
	return &response, nil
}
