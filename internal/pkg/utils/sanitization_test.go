package utils

import (
	"telemed-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Whitespace Trimmed", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "  Alice Tan  ",
			Email:    "  alice@example.com  ",
			Password: "  secret-password  ",
			Role:     "  patient  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Alice Tan", request.Name)
		assert.Equal(t, "alice@example.com", request.Email)
		assert.Equal(t, "secret-password", request.Password)
		assert.Equal(t, "patient", request.Role)
	})

	t.Run("Email Case Preserved", func(t *testing.T) {
		request := &requests.RegisterUser{
			Name:     "Alice Tan",
			Email:    "  Alice@Example.COM  ",
			Password: "secret-password",
			Role:     "patient",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Alice@Example.COM", request.Email, "email casing must be stored as submitted")
	})
}

func TestSanitizeCreateBookingRequest(t *testing.T) {
	t.Run("Slot Trimmed", func(t *testing.T) {
		request := &requests.CreateBooking{Slot: "  Mon 9am  "}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "Mon 9am", request.Slot)
	})

	t.Run("Interior Whitespace Preserved", func(t *testing.T) {
		request := &requests.CreateBooking{Slot: "Mon  9am"}

		SanitizeCreateBookingRequest(request)

		assert.Equal(t, "Mon  9am", request.Slot, "slots match by exact string equality")
	})
}

func TestSanitizeUpsertDoctorProfileRequest(t *testing.T) {
	request := &requests.UpsertDoctorProfile{
		Specialization: "  Cardiology  ",
		Experience:     "  10 years  ",
		Slots:          "  9am,10am  ",
	}

	SanitizeUpsertDoctorProfileRequest(request)

	assert.Equal(t, "Cardiology", request.Specialization)
	assert.Equal(t, "10 years", request.Experience)
	assert.Equal(t, "9am,10am", request.Slots)
}
