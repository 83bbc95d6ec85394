package jobs

import (
	"context"
	"log"
	"time"

	"MediBook/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func StartReminderScheduler() {
	c := cron.New()

	// Sweep due medicine reminders every 15 minutes
	c.AddFunc("*/15 * * * *", func() {
		log.Println("Running medicine reminder sweep...")
		RunReminderSweep(time.Now())
	})

	c.Start()
}

/*
* A missed trigger rolls forward in whole frequency steps
* until it lands in the future
 */
func RollForward(next time.Time, frequencyHours int, now time.Time) time.Time {
	if frequencyHours <= 0 {
		return next
	}
	step := time.Duration(frequencyHours) * time.Hour
	for !next.After(now) {
		next = next.Add(step)
	}
	return next
}

func AsTime(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case primitive.DateTime:
		return val.Time(), true
	}
	return time.Time{}, false
}

func AsInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return 0
}

/*
* Find patients carrying a due active reminder
* Log the due event and roll its trigger forward
 */
func RunReminderSweep(now time.Time) {
	ctx := context.Background()
	filter := bson.M{
		"reminders": bson.M{
			"$elemMatch": bson.M{
				"active":      true,
				"nextTrigger": bson.M{"$lte": now},
			},
		},
	}
	coll := db.OpenCollections(constants.PatientCollection)
	patients, err := db.FindAll(ctx, coll, filter, nil)
	if err != nil {
		log.Println("Error from the findAll function:", err)
		return
	}

	for _, p := range patients {
		patient, ok := p.(map[string]interface{})
		if !ok {
			log.Println("Invalid patient record:", p)
			continue
		}
		patientId, ok := patient["code"].(string)
		if !ok {
			log.Println("Invalid patientId:", patient)
			continue
		}
		sweepPatientReminders(ctx, patientId, patient, now)
	}
}

func sweepPatientReminders(ctx context.Context, patientId string, patient map[string]interface{}, now time.Time) {
	raw, ok := patient["reminders"].(primitive.A)
	if !ok {
		return
	}
	for _, r := range raw {
		reminder, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		active, _ := reminder["active"].(bool)
		if !active {
			continue
		}
		next, ok := AsTime(reminder["nextTrigger"])
		if !ok || next.After(now) {
			continue
		}
		reminderId, _ := reminder["id"].(string)
		name, _ := reminder["name"].(string)
		log.Println("Medicine reminder due for patient", patientId, ":", name)

		rolled := RollForward(next, AsInt(reminder["frequency"]), now)
		err := advanceReminderTrigger(ctx, patientId, reminderId, rolled)
		if err != nil {
			log.Println("Error advancing reminder trigger:", err)
		}
	}
}

/*
* Targeted element update via arrayFilters, no document rewrite
 */
func advanceReminderTrigger(ctx context.Context, patientId, reminderId string, next time.Time) error {
	filter := bson.M{
		"code": patientId,
	}
	update := bson.M{
		"$set": bson.M{
			"reminders.$[elem].nextTrigger": next,
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"elem.id": reminderId},
		},
	})
	_, err := db.DB.Collection(constants.PatientCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
