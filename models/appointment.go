package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The appointment document is the single source of truth for the
// patient-doctor link; both sides list their appointments by querying
// this collection, so booking is one insert.
type Appointment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	PatientId     string             `json:"patientId" bson:"patientId"`
	DoctorId      string             `json:"doctorId" bson:"doctorId"`
	Date          string             `json:"date" bson:"date"`
	Time          string             `json:"time" bson:"time"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	SessionId     string             `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string             `json:"updatedBy" bson:"updatedBy"`
}
