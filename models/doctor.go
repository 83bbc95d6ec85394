package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is stored as a GeoJSON Point so the 2dsphere index can serve
// proximity queries. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	Name           string             `json:"name" bson:"name"`
	Mail           string             `json:"mail" bson:"mail"`
	PhoneNo        string             `json:"phoneNo" bson:"phoneNo"`
	Speciality     string             `json:"speciality" bson:"speciality"`
	Location       GeoPoint           `json:"location" bson:"location"`
	AvailableTimes []string           `json:"availableTimes" bson:"availableTimes"`
	RatingSum      float64            `json:"ratingSum" bson:"ratingSum"`
	RatingCount    int                `json:"ratingCount" bson:"ratingCount"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}
