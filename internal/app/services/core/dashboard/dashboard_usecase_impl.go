package dashboard

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/utils"
)

type dashboardUsecase struct {
	DoctorRepository  contracts.DoctorRepository
	BookingRepository contracts.BookingRepository
}

func NewDashboardUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	bookingMongoRepository contracts.BookingRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		DoctorRepository:  doctorMongoRepository,
		BookingRepository: bookingMongoRepository,
	}
}

func (uc *dashboardUsecase) GetDashboard(ctx context.Context, session *models.Session) (*responses.Dashboard, error) {
	dashboard := &responses.Dashboard{Role: session.Role}

	if session.Role == constvars.RoleDoctor {
		// A doctor who has not filled in a profile yet still gets a
		// dashboard, just without one.
		profile, err := uc.DoctorRepository.FindByEmail(ctx, session.Email)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			mapped := utils.MapDoctorProfileToResponse(profile)
			dashboard.Profile = &mapped
		}

		bookings, err := uc.BookingRepository.FindAllByDoctorEmail(ctx, session.Email)
		if err != nil {
			return nil, err
		}
		dashboard.Bookings = utils.MapBookingsToResponse(bookings)

		return dashboard, nil
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dashboard.Doctors = utils.MapDoctorProfilesToResponse(doctors)

	bookings, err := uc.BookingRepository.FindAllByPatientEmail(ctx, session.Email)
	if err != nil {
		return nil, err
	}
	dashboard.Bookings = utils.MapBookingsToResponse(bookings)

	return dashboard, nil
}
