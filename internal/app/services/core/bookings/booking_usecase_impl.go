package bookings

import (
	"context"
	"fmt"
	"strings"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	DoctorRepository  contracts.DoctorRepository
	LockerService     contracts.LockerService
	BookingNotifier   contracts.BookingNotifier
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewBookingUsecase(
	bookingMongoRepository contracts.BookingRepository,
	doctorMongoRepository contracts.DoctorRepository,
	lockerService contracts.LockerService,
	bookingNotifier contracts.BookingNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingMongoRepository,
		DoctorRepository:  doctorMongoRepository,
		LockerService:     lockerService,
		BookingNotifier:   bookingNotifier,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, session *models.Session, doctorEmail, slot string) (*responses.BookingCreated, error) {
	if session.Role != constvars.RolePatient {
		return nil, exceptions.ErrNotMatchRoleType(nil, constvars.ErrClientOnlyPatientsCanBook)
	}

	slot = strings.TrimSpace(slot)
	if slot == "" {
		return nil, exceptions.ErrSlotRequired(nil)
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, doctorEmail)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	// Serialize concurrent attempts on the same pair so the existence check
	// and the insert behave as one unit.
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, doctorEmail, slot)
	lockTTL := time.Duration(uc.InternalConfig.App.BookingLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(nil)
	}
	defer uc.LockerService.Unlock(ctx, lockKey, lockValue)

	existing, err := uc.BookingRepository.FindByDoctorAndSlot(ctx, doctorEmail, slot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	roomName := fmt.Sprintf(constvars.MeetingRoomNameFormat, utils.GenerateMeetingRoomID())
	booking := &models.Booking{
		DoctorEmail:    doctorEmail,
		PatientEmail:   session.Email,
		PatientName:    session.Name,
		DoctorName:     doctor.Name,
		Specialization: doctor.Specialization,
		Slot:           slot,
		MeetingLink:    fmt.Sprintf(constvars.MeetingLinkFormat, roomName),
		CreatedAt:      time.Now().Format(constvars.BookingCreatedAtLayout),
		Status:         constvars.BookingStatusConfirmed,
	}

	_, err = uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	response := &responses.BookingCreated{
		Booking:   utils.MapBookingToResponse(booking),
		EmailSent: true,
	}

	// The booking is already durable; a notification failure only changes
	// the message shown to the patient.
	if err := uc.BookingNotifier.NotifyBookingConfirmed(booking); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking notification failed",
			zap.String(constvars.LoggingDoctorEmailKey, doctorEmail),
			zap.String(constvars.LoggingPatientEmailKey, session.Email),
			zap.String(constvars.LoggingSlotKey, slot),
			zap.Error(err),
		)
		response.EmailSent = false
	}

	return response, nil
}

func (uc *bookingUsecase) ListBookingsForDoctor(ctx context.Context, email string) ([]responses.Booking, error) {
	bookings, err := uc.BookingRepository.FindAllByDoctorEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return utils.MapBookingsToResponse(bookings), nil
}

func (uc *bookingUsecase) ListBookingsForPatient(ctx context.Context, email string) ([]responses.Booking, error) {
	bookings, err := uc.BookingRepository.FindAllByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return utils.MapBookingsToResponse(bookings), nil
}
