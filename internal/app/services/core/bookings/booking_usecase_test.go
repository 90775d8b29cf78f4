package bookings

import (
	"context"
	"errors"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindByDoctorAndSlot(ctx context.Context, doctorEmail, slot string) (*models.Booking, error) {
	args := m.Called(ctx, doctorEmail, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAllByDoctorEmail(ctx context.Context, doctorEmail string) ([]models.Booking, error) {
	args := m.Called(ctx, doctorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindAllByPatientEmail(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	args := m.Called(ctx, patientEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) UpsertProfile(ctx context.Context, profile *models.DoctorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.DoctorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DoctorProfile), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockBookingNotifier struct {
	mock.Mock
}

func (m *MockBookingNotifier) NotifyBookingConfirmed(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			BookingLockTTLInSeconds: 10,
		},
	}
}

func patientSession() *models.Session {
	return &models.Session{
		UserID: "user-1",
		Email:  "patient@example.com",
		Name:   "Pat Ient",
		Role:   constvars.RolePatient,
	}
}

func cardiologyProfile() *models.DoctorProfile {
	return &models.DoctorProfile{
		Email:          "doc@example.com",
		Name:           "Doc Tor",
		Specialization: "Cardiology",
		Experience:     "10 years",
		Slots:          []string{"Mon 9am", "Mon 10am"},
	}
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Successful Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		doctorRepo := new(MockDoctorRepository)
		lockerService := new(MockLockerService)
		notifier := new(MockBookingNotifier)

		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(cardiologyProfile(), nil)
		lockerService.On("TryLock", mock.Anything, "booking-lock:doc@example.com:Mon 9am", 10*time.Second).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, "booking-lock:doc@example.com:Mon 9am", "lock-value").Return(nil)
		bookingRepo.On("FindByDoctorAndSlot", mock.Anything, "doc@example.com", "Mon 9am").Return(nil, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-id", nil)
		notifier.On("NotifyBookingConfirmed", mock.AnythingOfType("*models.Booking")).Return(nil)

		uc := NewBookingUsecase(bookingRepo, doctorRepo, lockerService, notifier, newTestInternalConfig(), logger)

		response, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 9am")

		assert.NoError(t, err)
		assert.True(t, response.EmailSent)
		assert.Equal(t, "doc@example.com", response.Booking.DoctorEmail)
		assert.Equal(t, "patient@example.com", response.Booking.PatientEmail)
		assert.Equal(t, "Mon 9am", response.Booking.Slot)
		assert.Equal(t, constvars.BookingStatusConfirmed, response.Booking.Status)
		assert.Regexp(t, `^https://meet\.jit\.si/consult-[0-9a-f]{32}$`, response.Booking.MeetingLink)

		bookingRepo.AssertExpectations(t)
		lockerService.AssertExpectations(t)
	})

	t.Run("Doctor Snapshot Denormalized", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		doctorRepo := new(MockDoctorRepository)
		lockerService := new(MockLockerService)
		notifier := new(MockBookingNotifier)

		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(cardiologyProfile(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bookingRepo.On("FindByDoctorAndSlot", mock.Anything, "doc@example.com", "Mon 9am").Return(nil, nil)

		var inserted *models.Booking
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*models.Booking)
		}).Return("booking-id", nil)
		notifier.On("NotifyBookingConfirmed", mock.Anything).Return(nil)

		uc := NewBookingUsecase(bookingRepo, doctorRepo, lockerService, notifier, newTestInternalConfig(), logger)

		_, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 9am")

		assert.NoError(t, err)
		assert.Equal(t, "Doc Tor", inserted.DoctorName)
		assert.Equal(t, "Cardiology", inserted.Specialization)
		assert.Equal(t, "Pat Ient", inserted.PatientName)

		_, parseErr := time.Parse(constvars.BookingCreatedAtLayout, inserted.CreatedAt)
		assert.NoError(t, parseErr)
	})

	t.Run("Doctor Role Rejected", func(t *testing.T) {
		uc := NewBookingUsecase(new(MockBookingRepository), new(MockDoctorRepository), new(MockLockerService), new(MockBookingNotifier), newTestInternalConfig(), logger)

		session := patientSession()
		session.Role = constvars.RoleDoctor

		_, err := uc.CreateBooking(context.Background(), session, "doc@example.com", "Mon 9am")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Empty Slot Rejected", func(t *testing.T) {
		uc := NewBookingUsecase(new(MockBookingRepository), new(MockDoctorRepository), new(MockLockerService), new(MockBookingNotifier), newTestInternalConfig(), logger)

		_, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "   ")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Unknown Doctor Rejected", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		uc := NewBookingUsecase(new(MockBookingRepository), doctorRepo, new(MockLockerService), new(MockBookingNotifier), newTestInternalConfig(), logger)

		_, err := uc.CreateBooking(context.Background(), patientSession(), "ghost@example.com", "Mon 9am")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Taken Slot Rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		doctorRepo := new(MockDoctorRepository)
		lockerService := new(MockLockerService)

		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(cardiologyProfile(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bookingRepo.On("FindByDoctorAndSlot", mock.Anything, "doc@example.com", "Mon 9am").Return(&models.Booking{
			DoctorEmail: "doc@example.com",
			Slot:        "Mon 9am",
		}, nil)

		uc := NewBookingUsecase(bookingRepo, doctorRepo, lockerService, new(MockBookingNotifier), newTestInternalConfig(), logger)

		_, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 9am")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		bookingRepo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("Lock Contention Rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		doctorRepo := new(MockDoctorRepository)
		lockerService := new(MockLockerService)

		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(cardiologyProfile(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		uc := NewBookingUsecase(bookingRepo, doctorRepo, lockerService, new(MockBookingNotifier), newTestInternalConfig(), logger)

		_, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 9am")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		bookingRepo.AssertNotCalled(t, "FindByDoctorAndSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Notification Failure Does Not Fail Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		doctorRepo := new(MockDoctorRepository)
		lockerService := new(MockLockerService)
		notifier := new(MockBookingNotifier)

		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(cardiologyProfile(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bookingRepo.On("FindByDoctorAndSlot", mock.Anything, "doc@example.com", "Mon 9am").Return(nil, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-id", nil)
		notifier.On("NotifyBookingConfirmed", mock.Anything).Return(errors.New("smtp connection refused"))

		uc := NewBookingUsecase(bookingRepo, doctorRepo, lockerService, notifier, newTestInternalConfig(), logger)

		response, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 9am")

		assert.NoError(t, err)
		assert.False(t, response.EmailSent)
	})

	t.Run("Distinct Slots For Same Doctor Both Succeed", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		doctorRepo := new(MockDoctorRepository)
		lockerService := new(MockLockerService)
		notifier := new(MockBookingNotifier)

		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(cardiologyProfile(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		bookingRepo.On("FindByDoctorAndSlot", mock.Anything, "doc@example.com", mock.Anything).Return(nil, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-id", nil)
		notifier.On("NotifyBookingConfirmed", mock.Anything).Return(nil)

		uc := NewBookingUsecase(bookingRepo, doctorRepo, lockerService, notifier, newTestInternalConfig(), logger)

		first, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 9am")
		assert.NoError(t, err)

		second, err := uc.CreateBooking(context.Background(), patientSession(), "doc@example.com", "Mon 10am")
		assert.NoError(t, err)

		assert.NotEqual(t, first.Booking.MeetingLink, second.Booking.MeetingLink)
	})
}
