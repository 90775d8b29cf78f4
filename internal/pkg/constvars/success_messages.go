package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	SignupSuccess = "account created successfully, please login"
	LoginSuccess  = "login successful"
	LogoutSuccess = "you have been logged out"

	// Doctor messages
	DoctorProfileSavedSuccess = "doctor profile saved successfully"
	DoctorListSuccess         = "doctors fetched successfully"
	DoctorProfileGetSuccess   = "doctor profile fetched successfully"

	// Booking messages
	BookingCreatedSuccess     = "booking confirmed, check your email for meeting details"
	BookingCreatedEmailFailed = "booking confirmed, but there was an issue sending email notifications"
	BookingListSuccess        = "bookings fetched successfully"

	// Dashboard
	DashboardGetSuccess = "dashboard fetched successfully"
)
