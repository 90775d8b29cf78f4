package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is insert-only. DoctorName and Specialization are a snapshot of the
// doctor profile at booking time; later profile edits do not touch them.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	DoctorEmail    string             `bson:"doctorEmail"`
	PatientEmail   string             `bson:"patientEmail"`
	PatientName    string             `bson:"patientName"`
	DoctorName     string             `bson:"doctorName"`
	Specialization string             `bson:"specialization"`
	Slot           string             `bson:"slot"`
	MeetingLink    string             `bson:"meetingLink"`
	CreatedAt      string             `bson:"createdAt"`
	Status         string             `bson:"status"`
}
