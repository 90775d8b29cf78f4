package responses

type Booking struct {
	ID             string `json:"id"`
	DoctorEmail    string `json:"doctor_email"`
	PatientEmail   string `json:"patient_email"`
	PatientName    string `json:"patient_name"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	Slot           string `json:"slot"`
	MeetingLink    string `json:"meeting_link"`
	CreatedAt      string `json:"created_at"`
	Status         string `json:"status"`
}

type BookingCreated struct {
	Booking   Booking `json:"booking"`
	EmailSent bool    `json:"email_sent"`
}
