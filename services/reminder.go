package services

import (
	"log"
	"strconv"
	"time"

	"MediBook/apperrors"
	"MediBook/constants"
	"MediBook/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Frequency arrives as a JSON number or a string
 */
func AsFrequency(v interface{}) (int, error) {
	switch val := v.(type) {
	case float64:
		if val > 0 && val == float64(int(val)) {
			return int(val), nil
		}
	case int:
		if val > 0 {
			return val, nil
		}
	case string:
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, apperrors.Validation("frequency must be a positive number of hours")
}

func NextTriggerFrom(now time.Time, frequencyHours int) time.Time {
	return now.Add(time.Duration(frequencyHours) * time.Hour)
}

/*
* Targeted $set against the matched array element
* Next trigger is recomputed only when a new frequency is supplied,
* otherwise the stored trigger stays untouched
 */
func BuildReminderUpdate(data map[string]interface{}, now time.Time) (bson.M, error) {
	set := bson.M{}
	if val, ok := data["name"].(string); ok && val != "" {
		set["reminders.$.name"] = val
	}
	if val, ok := data["type"].(string); ok && val != "" {
		set["reminders.$.type"] = val
	}
	if val, ok := data["frequency"]; ok {
		frequency, err := AsFrequency(val)
		if err != nil {
			return nil, err
		}
		set["reminders.$.frequency"] = frequency
		set["reminders.$.nextTrigger"] = NextTriggerFrom(now, frequency)
	}
	if len(set) == 0 {
		return nil, apperrors.Validation("no reminder fields to update")
	}
	set["reminders.$.updatedAt"] = now
	return set, nil
}

/*
* Validate the input fields
* Compute the first trigger as now plus frequency hours
* Push onto the acting patient's reminder list
 */
func CreateReminder(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	patientId := c.GetString("code")
	if patientId == "" {
		return nil, apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	fields := []string{"name", "type"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return nil, apperrors.Validation(err.Error())
		}
	}
	frequency, err := AsFrequency(data["frequency"])
	if err != nil {
		return nil, err
	}
	now := time.Now()
	reminder := models.MedicineReminder{
		ID:          uuid.NewString(),
		Name:        data["name"].(string),
		Type:        data["type"].(string),
		Frequency:   frequency,
		NextTrigger: NextTriggerFrom(now, frequency),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code": patientId,
	}
	update := bson.M{
		"$push": bson.M{
			"reminders": reminder,
		},
	}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return nil, err
	}
	if updated.MatchedCount == 0 {
		return nil, apperrors.NotFound(constants.PATIENT_NOT_FOUND)
	}
	if err := refreshPatientCache(c, patientId); err != nil {
		log.Println("Error while refreshing patient cache: ", err)
	}
	return map[string]interface{}{
		"id":          reminder.ID,
		"name":        reminder.Name,
		"type":        reminder.Type,
		"frequency":   reminder.Frequency,
		"nextTrigger": reminder.NextTrigger,
		"active":      reminder.Active,
	}, nil
}

/*
* The acting patient's own list, straight off the document
 */
func FetchReminders(c *gin.Context) ([]map[string]interface{}, error) {
	patient, err := FetchMyProfile(c)
	if err != nil {
		log.Println("Error from FetchMyProfile: ", err)
		return nil, err
	}
	return ExtractReminders(patient)
}

func ExtractReminders(patient map[string]interface{}) ([]map[string]interface{}, error) {
	reminders := []map[string]interface{}{}
	raw, exists := patient["reminders"]
	if !exists || raw == nil {
		return reminders, nil
	}
	switch val := raw.(type) {
	case primitive.A:
		for _, v := range val {
			if m, ok := v.(map[string]interface{}); ok {
				reminders = append(reminders, m)
			}
		}
	case []interface{}:
		for _, v := range val {
			if m, ok := v.(map[string]interface{}); ok {
				reminders = append(reminders, m)
			}
		}
	case []map[string]interface{}:
		reminders = append(reminders, val...)
	default:
		log.Println("Unable to fetch reminders from patient")
		return nil, apperrors.Validation("invalid reminders type found in DB")
	}
	return reminders, nil
}

/*
* Update only the supplied fields via the positional operator
* No match on (patient, reminder id) is a not-found error
 */
func UpdateReminder(c *gin.Context, reminderId string, data map[string]interface{}) (string, error) {
	patientId := c.GetString("code")
	if patientId == "" {
		return "", apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	set, err := BuildReminderUpdate(data, time.Now())
	if err != nil {
		return "", err
	}
	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code":         patientId,
		"reminders.id": reminderId,
	}
	updated, err := db.UpdateOne(c, collection, filter, bson.M{"$set": set})
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", apperrors.NotFound(constants.REMINDER_NOT_FOUND)
	}
	if err := refreshPatientCache(c, patientId); err != nil {
		log.Println("Error while refreshing patient cache: ", err)
	}
	return "Updated Successfully", nil
}

/*
* Flip the active flag in place, the entry stays on the list
 */
func SetReminderActive(c *gin.Context, reminderId string, active bool) (string, error) {
	patientId := c.GetString("code")
	if patientId == "" {
		return "", apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code":         patientId,
		"reminders.id": reminderId,
	}
	update := bson.M{
		"$set": bson.M{
			"reminders.$.active":    active,
			"reminders.$.updatedAt": time.Now(),
		},
	}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", apperrors.NotFound(constants.REMINDER_NOT_FOUND)
	}
	if err := refreshPatientCache(c, patientId); err != nil {
		log.Println("Error while refreshing patient cache: ", err)
	}
	return "Updated Successfully", nil
}

/*
* Remove the entry entirely with $pull
 */
func DeleteReminder(c *gin.Context, reminderId string) (string, error) {
	patientId := c.GetString("code")
	if patientId == "" {
		return "", apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code": patientId,
	}
	update := bson.M{
		"$pull": bson.M{
			"reminders": bson.M{
				"id": reminderId,
			},
		},
	}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return "", err
	}
	if updated.ModifiedCount == 0 {
		return "", apperrors.NotFound(constants.REMINDER_NOT_FOUND)
	}
	if err := refreshPatientCache(c, patientId); err != nil {
		log.Println("Error while refreshing patient cache: ", err)
	}
	return "Deleted Successfully", nil
}
