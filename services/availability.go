package services

import (
	"errors"
	"log"

	"MediBook/apperrors"
	"MediBook/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Coerce the stored list into []string
* Mongo hands back primitive.A, tests hand in plain slices
 */
func ExtractStringList(raw interface{}) ([]string, error) {
	list := []string{}
	switch val := raw.(type) {
	case primitive.A:
		for _, v := range val {
			if str, ok := v.(string); ok {
				list = append(list, str)
			}
		}
	case []interface{}:
		for _, v := range val {
			if str, ok := v.(string); ok {
				list = append(list, str)
			}
		}
	case []string:
		list = append(list, val...)
	case nil:
		return list, nil
	default:
		return nil, errors.New("invalid list type found in DB")
	}
	return list, nil
}

/*
* The requested time must be one of the doctor's published times
* Slot matching is plain equality on the time string
 */
func ValidateDoctorTime(availableTimes []string, timeGiven string) error {
	for _, t := range availableTimes {
		if t == timeGiven {
			return nil
		}
	}
	return apperrors.Conflict(constants.SLOT_NOT_IN_DOCTOR_SCHEDULE)
}

/*
* The appointment collection is the source of truth for commitments
* Any existing appointment at the same date+time is a conflict
 */
func EnsureDoctorSlotFree(c *gin.Context, doctorId, date, timeGiven string) error {
	collection := db.OpenCollections(constants.AppointmentCollection)
	filter := bson.M{
		"doctorId": doctorId,
		"date":     date,
		"time":     timeGiven,
	}
	count, err := collection.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error from countDocuments(doctor slot): ", err)
		return err
	}
	if count > 0 {
		return apperrors.Conflict(constants.DOCTOR_SLOT_ALREADY_BOOKED)
	}
	return nil
}

func EnsurePatientSlotFree(c *gin.Context, patientId, date, timeGiven string) error {
	collection := db.OpenCollections(constants.AppointmentCollection)
	filter := bson.M{
		"patientId": patientId,
		"date":      date,
		"time":      timeGiven,
	}
	count, err := collection.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error from countDocuments(patient slot): ", err)
		return err
	}
	if count > 0 {
		return apperrors.Conflict(constants.PATIENT_SLOT_ALREADY_BOOKED)
	}
	return nil
}
