package doctors

import (
	"context"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func doctorSession() *models.Session {
	return &models.Session{
		UserID: "user-1",
		Email:  "doc@example.com",
		Name:   "Doc Tor",
		Role:   constvars.RoleDoctor,
	}
}

func TestDoctorUsecase_UpsertProfile(t *testing.T) {
	t.Run("Profile Built From Session And Request", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)

		var saved *models.DoctorProfile
		doctorRepo.On("UpsertProfile", mock.Anything, mock.AnythingOfType("*models.DoctorProfile")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.DoctorProfile)
		}).Return(nil)

		uc := NewDoctorUsecase(doctorRepo)

		response, err := uc.UpsertProfile(context.Background(), doctorSession(), &requests.UpsertDoctorProfile{
			Specialization: "Cardiology",
			Experience:     "10 years",
			Slots:          "Mon 9am, Mon 10am, ,Tue 2pm",
		})

		assert.NoError(t, err)
		assert.Equal(t, "doc@example.com", saved.Email)
		assert.Equal(t, "Doc Tor", saved.Name)
		assert.Equal(t, []string{"Mon 9am", "Mon 10am", "Tue 2pm"}, saved.Slots)
		assert.Equal(t, saved.Slots, response.Slots)
	})

	t.Run("Patient Role Rejected", func(t *testing.T) {
		uc := NewDoctorUsecase(new(MockDoctorRepository))

		session := doctorSession()
		session.Role = constvars.RolePatient

		_, err := uc.UpsertProfile(context.Background(), session, &requests.UpsertDoctorProfile{
			Specialization: "Cardiology",
			Experience:     "10 years",
			Slots:          "Mon 9am",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestDoctorUsecase_GetProfile(t *testing.T) {
	t.Run("Existing Profile Returned", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByEmail", mock.Anything, "doc@example.com").Return(&models.DoctorProfile{
			Email:          "doc@example.com",
			Name:           "Doc Tor",
			Specialization: "Cardiology",
		}, nil)

		uc := NewDoctorUsecase(doctorRepo)

		response, err := uc.GetProfile(context.Background(), "doc@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "Cardiology", response.Specialization)
	})

	t.Run("Missing Profile Returns Not Found", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		uc := NewDoctorUsecase(doctorRepo)

		_, err := uc.GetProfile(context.Background(), "ghost@example.com")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Email Lookup Is Case Sensitive", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		doctorRepo.On("FindByEmail", mock.Anything, "Doc@Example.com").Return(nil, nil)

		uc := NewDoctorUsecase(doctorRepo)

		_, err := uc.GetProfile(context.Background(), "Doc@Example.com")

		assert.Error(t, err)
		doctorRepo.AssertCalled(t, "FindByEmail", mock.Anything, "Doc@Example.com")
	})
}
