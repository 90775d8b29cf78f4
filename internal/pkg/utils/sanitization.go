package utils

import (
	"strings"
	"telemed-service/internal/pkg/dto/requests"
)

// Emails are stored exactly as submitted (case-sensitive), so sanitization
// only trims surrounding whitespace.

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	input.Role = strings.TrimSpace(input.Role)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(input.Email)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpsertDoctorProfileRequest(input *requests.UpsertDoctorProfile) {
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Experience = strings.TrimSpace(input.Experience)
	input.Slots = strings.TrimSpace(input.Slots)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.Slot = strings.TrimSpace(input.Slot)
}
