package requests

type UpsertDoctorProfile struct {
	Specialization string `json:"specialization" validate:"required"`
	Experience     string `json:"experience" validate:"required"`
	Slots          string `json:"slots" validate:"required"`
}
