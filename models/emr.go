package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EMR documents are written by the clinical workflow after a visit;
// this service only reads them.
type EMR struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	AppointmentId string             `json:"appointmentId" bson:"appointmentId"`
	PatientId     string             `json:"patientId" bson:"patientId"`
	DoctorId      string             `json:"doctorId" bson:"doctorId"`
	Diagnosis     string             `json:"diagnosis" bson:"diagnosis"`
	Prescription  []string           `json:"prescription" bson:"prescription"`
	Notes         string             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
