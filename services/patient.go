package services

import (
	"errors"
	"log"
	"math"
	"time"

	"MediBook/apperrors"
	"MediBook/constants"
	"MediBook/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

/*
* Weight in kilograms, height in centimeters
* Zero height gives zero, not a division panic
 */
func ComputeBMI(weight, height float64) float64 {
	if height <= 0 || weight <= 0 {
		return 0
	}
	meters := height / 100
	bmi := weight / (meters * meters)
	return math.Round(bmi*100) / 100
}

/*
* Validate the input fields
* Hash the password before it touches the document
* Compute BMI from the physical stats
* Save to db and cache, never cache the password
 */
func RegisterPatient(c *gin.Context, data map[string]interface{}) (string, error) {
	fields := []string{"name", "email", "phoneNo", "password"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return "", apperrors.Validation(err.Error())
		}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(data["password"].(string)), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error from bcrypt: ", err)
		return "", err
	}
	code, err := common.GenerateEmpCode(constants.PatientCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}
	weight := 0.0
	height := 0.0
	if val, ok := data["weight"]; ok {
		weight, err = ParsePositiveNumber(val, "weight")
		if err != nil {
			return "", err
		}
	}
	if val, ok := data["height"]; ok {
		height, err = ParsePositiveNumber(val, "height")
		if err != nil {
			return "", err
		}
	}

	patient := bson.M{
		"code":      code,
		"name":      data["name"],
		"mail":      data["email"],
		"phoneNo":   data["phoneNo"],
		"password":  string(hashed),
		"age":       int(asFloat(data["age"])),
		"gender":    data["gender"],
		"weight":    weight,
		"height":    height,
		"bmi":       ComputeBMI(weight, height),
		"reminders": []bson.M{},
		"isActive":  true,
		"createdAt": time.Now(),
		"updatedAt": time.Now(),
	}
	if coords, ok := data["coordinates"].(string); ok && coords != "" {
		lng, lat, err := ParseCoordinates(coords)
		if err != nil {
			log.Println("Error from ParseCoordinates: ", err)
			return "", err
		}
		patient["location"] = models.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		}
	}
	collection := db.OpenCollections(constants.PatientCollection)
	inserted, err := db.CreateOne(c, collection, patient)
	if err != nil {
		log.Println("Error from createOne: ", err)
		return "", err
	}
	log.Println("Inserted: ", inserted.InsertedID)

	delete(patient, "password")
	key := constants.PatientKey + code
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return code, nil
}

/*
* Point lookup by code
* Missing document is a not-found error
 */
func FetchPatientByCode(c *gin.Context, patientId string) (map[string]interface{}, error) {
	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code": patientId,
	}
	result := make(map[string]interface{})
	err := db.FindOne(c, collection, filter, &result)
	if err != nil {
		log.Println("Error from findOne function: ", err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(constants.PATIENT_NOT_FOUND)
		}
		return nil, err
	}
	delete(result, "password")
	return result, nil
}

/*
* The acting user's own profile, code comes from the token claims
 */
func FetchMyProfile(c *gin.Context) (map[string]interface{}, error) {
	code := c.GetString("code")
	if code == "" {
		log.Println("Unable to get patient code from context")
		return nil, apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	return FetchPatientByCode(c, code)
}

/*
* Only supplied fields are written
* BMI is recomputed whenever weight or height changes
* Refresh the cache afterwards
 */
func UpdatePatient(c *gin.Context, data map[string]interface{}) (string, error) {
	code := c.GetString("code")
	if code == "" {
		return "", apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	patient, err := FetchPatientByCode(c, code)
	if err != nil {
		log.Println("Error from fetchPatientByCode: ", err)
		return "", err
	}

	update := bson.M{}
	fields := []string{"name", "phoneNo", "gender"}
	for _, f := range fields {
		if err := common.TrimIfExists(data, f); err != nil {
			log.Println("Error from trimIfExists: ", err)
			return "", apperrors.Validation(err.Error())
		}
		if val, ok := data[f]; ok {
			update[f] = val
		}
	}
	weight := asFloat(patient["weight"])
	height := asFloat(patient["height"])
	statsChanged := false
	if val, ok := data["weight"]; ok {
		weight, err = ParsePositiveNumber(val, "weight")
		if err != nil {
			return "", err
		}
		update["weight"] = weight
		statsChanged = true
	}
	if val, ok := data["height"]; ok {
		height, err = ParsePositiveNumber(val, "height")
		if err != nil {
			return "", err
		}
		update["height"] = height
		statsChanged = true
	}
	if statsChanged {
		update["bmi"] = ComputeBMI(weight, height)
	}
	update["updatedAt"] = time.Now()

	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code": code,
	}
	updated, err := db.UpdateOne(c, collection, filter, bson.M{"$set": update})
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return "", err
	}
	log.Println("Updated: ", updated.ModifiedCount)

	if err := refreshPatientCache(c, code); err != nil {
		log.Println("Error while refreshing patient cache: ", err)
	}
	return "Updated Successfully", nil
}

/*
* Re-fetch the document and swap the cache entry
 */
func refreshPatientCache(c *gin.Context, patientId string) error {
	collection := db.OpenCollections(constants.PatientCollection)
	filter := bson.M{
		"code": patientId,
	}
	patient := make(map[string]interface{})
	if err := db.FindOne(c, collection, filter, &patient); err != nil {
		return err
	}
	delete(patient, "password")
	key := constants.PatientKey + patientId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old patient from cache:", err)
	}
	return redis.SetCache(c, key, patient)
}
