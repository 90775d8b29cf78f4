package bookings

import (
	"context"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	// CreateBooking runs the whole booking flow: conflict check, meeting
	// link generation, persist, then best-effort notification.
	CreateBooking(ctx context.Context, session *models.Session, doctorEmail, slot string) (*responses.BookingCreated, error)
	ListBookingsForDoctor(ctx context.Context, email string) ([]responses.Booking, error)
	ListBookingsForPatient(ctx context.Context, email string) ([]responses.Booking, error)
}
