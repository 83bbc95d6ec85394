package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicineReminder struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Type        string    `json:"type" bson:"type"`
	Frequency   int       `json:"frequency" bson:"frequency"`
	NextTrigger time.Time `json:"nextTrigger" bson:"nextTrigger"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Patient struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	Mail      string             `json:"mail" bson:"mail"`
	PhoneNo   string             `json:"phoneNo" bson:"phoneNo"`
	Password  string             `json:"password,omitempty" bson:"password,omitempty"`
	Age       int                `json:"age" bson:"age"`
	Gender    string             `json:"gender" bson:"gender"`
	Weight    float64            `json:"weight" bson:"weight"`
	Height    float64            `json:"height" bson:"height"`
	BMI       float64            `json:"bmi" bson:"bmi"`
	Location  GeoPoint           `json:"location" bson:"location"`
	Reminders []MedicineReminder `json:"reminders" bson:"reminders"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
