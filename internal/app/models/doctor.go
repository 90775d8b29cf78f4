package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DoctorProfile is keyed by email and replaced in full on every save; the
// slot list is advisory and never reconciled against existing bookings.
type DoctorProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Name           string             `bson:"name"`
	Specialization string             `bson:"specialization"`
	Experience     string             `bson:"experience"`
	Slots          []string           `bson:"slots"`
}
