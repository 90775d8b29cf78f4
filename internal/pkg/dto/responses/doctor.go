package responses

type DoctorProfile struct {
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	Slots          []string `json:"slots"`
}
