package responses

// Dashboard carries the role-conditional view: doctors see their own profile
// and incoming bookings, patients see the doctor directory and their own
// bookings.
type Dashboard struct {
	Role     string          `json:"role"`
	Profile  *DoctorProfile  `json:"profile,omitempty"`
	Doctors  []DoctorProfile `json:"doctors,omitempty"`
	Bookings []Booking       `json:"bookings"`
}
