package contracts

import (
	"context"
	"telemed-service/internal/app/models"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
	// FindByDoctorAndSlot matches the pair by exact string equality and
	// returns nil without error when no booking exists.
	FindByDoctorAndSlot(ctx context.Context, doctorEmail, slot string) (*models.Booking, error)
	FindAllByDoctorEmail(ctx context.Context, doctorEmail string) ([]models.Booking, error)
	FindAllByPatientEmail(ctx context.Context, patientEmail string) ([]models.Booking, error)
}
