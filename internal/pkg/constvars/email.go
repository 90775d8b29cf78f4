package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)

const (
	EmailBookingPatientSubjectFormat = "Appointment Confirmed with Dr. %s (%s)"
	EmailBookingPatientBodyFormat    = "Hello %s,\r\n\r\n" +
		"Your appointment with Dr. %s (%s) is confirmed.\r\n\r\n" +
		"Time Slot: %s\r\n" +
		"Meeting Link: %s\r\n\r\n" +
		"Please join the meeting 5 minutes before your scheduled time.\r\n\r\n" +
		"Best Regards,\r\nTelemedicine Support"

	EmailBookingDoctorSubjectFormat = "Upcoming Appointment - %s"
	EmailBookingDoctorBodyFormat    = "Hello Dr. %s,\r\n\r\n" +
		"You have a new appointment scheduled with a patient.\r\n\r\n" +
		"Time Slot: %s\r\n" +
		"Patient Name: %s\r\n" +
		"Patient Email: %s\r\n" +
		"Meeting Link: %s\r\n\r\n" +
		"Please be ready for the consultation at the scheduled time.\r\n\r\n" +
		"Best Regards,\r\nTelemedicine Support"
)
