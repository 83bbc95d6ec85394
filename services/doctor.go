package services

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"MediBook/apperrors"
	"MediBook/constants"
	"MediBook/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Parse "lat,lng" into longitude and latitude
* Mongo wants GeoJSON order, longitude first
 */
func ParseCoordinates(coords string) (float64, float64, error) {
	parts := strings.Split(strings.TrimSpace(coords), ",")
	if len(parts) != 2 {
		return 0, 0, apperrors.Validation(constants.INVALID_COORDINATES)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, apperrors.Validation(constants.INVALID_COORDINATES)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, apperrors.Validation(constants.INVALID_COORDINATES)
	}
	return lng, lat, nil
}

func BuildNearFilter(lng, lat float64, maxMeters int) bson.M {
	return bson.M{
		"$near": bson.M{
			"$geometry": bson.M{
				"type":        "Point",
				"coordinates": []float64{lng, lat},
			},
			"$maxDistance": maxMeters,
		},
	}
}

/*
* Distance orders the results here, it never excludes
* No $maxDistance on purpose
 */
func BuildNearOrder(lng, lat float64) bson.M {
	return bson.M{
		"$near": bson.M{
			"$geometry": bson.M{
				"type":        "Point",
				"coordinates": []float64{lng, lat},
			},
		},
	}
}

/*
* Shape a doctor document for search results
* Average rating is derived from the cumulative stats
 */
func ProjectDoctorSummary(doctor map[string]interface{}) map[string]interface{} {
	avg := 0.0
	count := asFloat(doctor["ratingCount"])
	if count > 0 {
		avg = asFloat(doctor["ratingSum"]) / count
	}
	return map[string]interface{}{
		"code":           doctor["code"],
		"name":           doctor["name"],
		"speciality":     doctor["speciality"],
		"location":       doctor["location"],
		"availableTimes": doctor["availableTimes"],
		"fee":            doctor["fee"],
		"averageRating":  avg,
		"ratingCount":    doctor["ratingCount"],
	}
}

/*
* Strict parse for amounts that must be positive
* Silent zero-coercion is how stats and fees get wiped
 */
func ParsePositiveNumber(v interface{}, field string) (float64, error) {
	n := 0.0
	switch val := v.(type) {
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int32:
		n = float64(val)
	case int64:
		n = float64(val)
	default:
		return 0, apperrors.Validation(field + " must be a positive number")
	}
	if n <= 0 {
		return 0, apperrors.Validation(field + " must be a positive number")
	}
	return n, nil
}

func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	}
	return 0
}

/*
* Validate the input fields
* Parse the published coordinates and available times
* Generate a code, build the document
* Save to db and cache
 */
func CreateDoctor(c *gin.Context, data map[string]interface{}) (string, error) {
	fields := []string{"name", "email", "phoneNo", "speciality", "coordinates"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return "", apperrors.Validation(err.Error())
		}
	}
	lng, lat, err := ParseCoordinates(data["coordinates"].(string))
	if err != nil {
		log.Println("Error from ParseCoordinates: ", err)
		return "", err
	}
	availableTimes, err := ExtractStringList(data["availableTimes"])
	if err != nil {
		log.Println("Error from ExtractStringList: ", err)
		return "", apperrors.Validation(err.Error())
	}
	// A zero fee would surface later as a rejected checkout amount
	fee, err := ParsePositiveNumber(data["fee"], "fee")
	if err != nil {
		log.Println("Error from ParsePositiveNumber: ", err)
		return "", err
	}
	code, err := common.GenerateEmpCode(constants.DoctorCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return "", err
	}
	createdBy := c.GetString("code")
	doctor := bson.M{
		"code":       code,
		"name":       data["name"],
		"mail":       data["email"],
		"phoneNo":    data["phoneNo"],
		"speciality": data["speciality"],
		"location": models.GeoPoint{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
		"availableTimes": availableTimes,
		"fee":            fee,
		"ratingSum":      0.0,
		"ratingCount":    0,
		"isActive":       true,
		"createdAt":      time.Now(),
		"createdBy":      createdBy,
		"updatedAt":      time.Now(),
		"updatedBy":      createdBy,
	}
	collection := db.OpenCollections(constants.DoctorCollection)
	inserted, err := db.CreateOne(c, collection, doctor)
	if err != nil {
		log.Println("Error from createOne: ", err)
		return "", err
	}
	log.Println("Inserted: ", inserted.InsertedID)
	key := constants.DoctorKey + code
	if err := redis.SetCache(c, key, doctor); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return code, nil
}

/*
* Point lookup by code
* Missing document is a not-found error
* Refresh the cache on the way out
 */
func FetchDoctorByCode(c *gin.Context, doctorId string) (map[string]interface{}, error) {
	collection := db.OpenCollections(constants.DoctorCollection)
	filter := bson.M{
		"code": doctorId,
	}
	result := make(map[string]interface{})
	err := db.FindOne(c, collection, filter, &result)
	if err != nil {
		log.Println("Error from findOne function: ", err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(constants.DOCTOR_NOT_FOUND)
		}
		return nil, err
	}
	key := constants.DoctorKey + doctorId
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return result, nil
}

/*
* Speciality and coordinates are both required
* Proximity query capped at the search radius, exact speciality match
* An empty result is a not-found condition, not an empty list
 */
func SearchDoctorsBySpeciality(c *gin.Context, speciality, coords string) ([]map[string]interface{}, error) {
	if strings.TrimSpace(speciality) == "" || strings.TrimSpace(coords) == "" {
		return nil, apperrors.Validation("speciality and coordinates are required")
	}
	lng, lat, err := ParseCoordinates(coords)
	if err != nil {
		log.Println("Error from ParseCoordinates: ", err)
		return nil, err
	}
	filter := bson.M{
		"speciality": speciality,
		"location":   BuildNearFilter(lng, lat, constants.MaxSearchRadiusMeters),
	}
	collection := db.OpenCollections(constants.DoctorCollection)
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return SummariesOrNotFound(docs)
}

/*
* Case-insensitive partial match on name and speciality
* The caller's stored location only orders the results,
* a patient without one still gets matches
 */
func BuildNameSearchFilter(name, speciality string, patient map[string]interface{}) bson.M {
	matches := []bson.M{}
	if strings.TrimSpace(name) != "" {
		matches = append(matches, bson.M{"name": primitive.Regex{Pattern: name, Options: "i"}})
	}
	if strings.TrimSpace(speciality) != "" {
		matches = append(matches, bson.M{"speciality": primitive.Regex{Pattern: speciality, Options: "i"}})
	}
	filter := bson.M{
		"$or": matches,
	}
	if lng, lat, ok := locationOf(patient); ok {
		filter["location"] = BuildNearOrder(lng, lat)
	}
	return filter
}

/*
* At least one of name or speciality is required
* Proximity ordering anchored at the caller's stored location
 */
func SearchDoctorsByName(c *gin.Context, name, speciality string) ([]map[string]interface{}, error) {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(speciality) == "" {
		return nil, apperrors.Validation("name or speciality is required")
	}
	patient, err := FetchMyProfile(c)
	if err != nil {
		log.Println("Error from FetchMyProfile: ", err)
		return nil, err
	}
	filter := BuildNameSearchFilter(name, speciality, patient)
	collection := db.OpenCollections(constants.DoctorCollection)
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return SummariesOrNotFound(docs)
}

/*
* An empty search result is a not-found condition, not an empty list
 */
func SummariesOrNotFound(docs []interface{}) ([]map[string]interface{}, error) {
	summaries := projectAll(docs)
	if len(summaries) == 0 {
		return nil, apperrors.NotFound(constants.NO_DOCTORS_FOUND_NEARBY)
	}
	return summaries, nil
}

func projectAll(docs []interface{}) []map[string]interface{} {
	summaries := []map[string]interface{}{}
	for _, d := range docs {
		doctor, ok := d.(map[string]interface{})
		if !ok {
			log.Println("Invalid doctor record:", d)
			continue
		}
		summaries = append(summaries, ProjectDoctorSummary(doctor))
	}
	return summaries
}

/*
* Pull [lng, lat] out of a stored GeoJSON point
* The ok flag distinguishes a missing location from Null Island
 */
func locationOf(doc map[string]interface{}) (float64, float64, bool) {
	location, ok := doc["location"].(map[string]interface{})
	if !ok {
		return 0, 0, false
	}
	coords, err := extractFloatList(location["coordinates"])
	if err != nil || len(coords) != 2 {
		return 0, 0, false
	}
	return coords[0], coords[1], true
}

func extractFloatList(raw interface{}) ([]float64, error) {
	list := []float64{}
	switch val := raw.(type) {
	case primitive.A:
		for _, v := range val {
			list = append(list, asFloat(v))
		}
	case []interface{}:
		for _, v := range val {
			list = append(list, asFloat(v))
		}
	case []float64:
		list = append(list, val...)
	default:
		return nil, errors.New("invalid coordinates type found in DB")
	}
	return list, nil
}
