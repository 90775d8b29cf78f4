package requests

type CreateBooking struct {
	Slot string `json:"slot" validate:"required"`
}
