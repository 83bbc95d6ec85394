package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// One rating per (userId, doctorId); the unique index enforces it.
type Rating struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	UserId    string             `json:"userId" bson:"userId"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	Rating    float64            `json:"rating" bson:"rating"`
	Review    string             `json:"review" bson:"review"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
