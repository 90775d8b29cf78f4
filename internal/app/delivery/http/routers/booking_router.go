package routers

import (
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/app/services/core/bookings"
	"telemed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.Authenticate).Get("/", bookingController.ListBookings)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RolePatient, constvars.ErrClientOnlyPatientsCanBook)).
		Post("/{doctorEmail}", bookingController.CreateBooking)
}
