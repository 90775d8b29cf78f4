package contracts

import (
	"telemed-service/internal/app/models"
)

// BookingNotifier sends the confirmation emails for a persisted booking.
// Sending is best-effort: an unconfigured relay is a silent no-op, a transport
// failure is returned to the caller who must treat it as non-fatal.
type BookingNotifier interface {
	NotifyBookingConfirmed(booking *models.Booking) error
}
