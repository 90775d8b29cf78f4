package utils

import (
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/dto/responses"
)

func MapDoctorProfileToResponse(profile *models.DoctorProfile) responses.DoctorProfile {
	return responses.DoctorProfile{
		Email:          profile.Email,
		Name:           profile.Name,
		Specialization: profile.Specialization,
		Experience:     profile.Experience,
		Slots:          profile.Slots,
	}
}

func MapBookingToResponse(booking *models.Booking) responses.Booking {
	return responses.Booking{
		ID:             booking.ID.Hex(),
		DoctorEmail:    booking.DoctorEmail,
		PatientEmail:   booking.PatientEmail,
		PatientName:    booking.PatientName,
		DoctorName:     booking.DoctorName,
		Specialization: booking.Specialization,
		Slot:           booking.Slot,
		MeetingLink:    booking.MeetingLink,
		CreatedAt:      booking.CreatedAt,
		Status:         booking.Status,
	}
}

func MapBookingsToResponse(bookings []models.Booking) []responses.Booking {
	result := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		result = append(result, MapBookingToResponse(&bookings[i]))
	}
	return result
}

func MapDoctorProfilesToResponse(profiles []models.DoctorProfile) []responses.DoctorProfile {
	result := make([]responses.DoctorProfile, 0, len(profiles))
	for i := range profiles {
		result = append(result, MapDoctorProfileToResponse(&profiles[i]))
	}
	return result
}
