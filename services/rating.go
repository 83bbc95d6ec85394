package services

import (
	"errors"
	"log"
	"time"

	"MediBook/apperrors"
	"MediBook/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func ParseRatingValue(v interface{}) (float64, error) {
	rating := asFloat(v)
	if rating < 1 || rating > 5 {
		return 0, apperrors.Validation("rating must be between 1 and 5")
	}
	return rating, nil
}

/*
* A review may be attached exactly once through this path
 */
func CanAttachReview(rating map[string]interface{}) error {
	if review, ok := rating["review"].(string); ok && review != "" {
		return apperrors.Conflict(constants.REVIEW_ALREADY_SET)
	}
	return nil
}

/*
* Ownership is verified before any mutation happens
 */
func EnsureRatingOwner(rating map[string]interface{}, userId string) error {
	owner, ok := rating["userId"].(string)
	if !ok || owner != userId {
		log.Println("This user does not own this rating")
		return apperrors.Authorization(constants.NOT_RATING_OWNER)
	}
	return nil
}

/*
* Rating requires a completed appointment between the same pair
* The unique (userId, doctorId) index turns a second attempt into a conflict
* Doctor cumulative stats are bumped after the insert
 */
func CreateRating(c *gin.Context, doctorId string, data map[string]interface{}) (map[string]interface{}, error) {
	userId := c.GetString("code")
	if userId == "" {
		return nil, apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	if _, err := FetchDoctorByCode(c, doctorId); err != nil {
		log.Println("Error from fetchDoctorByCode: ", err)
		return nil, err
	}
	rating, err := ParseRatingValue(data["rating"])
	if err != nil {
		return nil, err
	}

	appointments := db.OpenCollections(constants.AppointmentCollection)
	completedFilter := bson.M{
		"patientId": userId,
		"doctorId":  doctorId,
		"status":    constants.StatusCompleted,
	}
	count, err := appointments.CountDocuments(c, completedFilter)
	if err != nil {
		log.Println("Error from countDocuments(completed appointments): ", err)
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.Validation(constants.NO_COMPLETED_APPOINTMENT_WITH_DOCTOR)
	}

	code, err := common.GenerateEmpCode(constants.RatingCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return nil, err
	}
	doc := bson.M{
		"code":      code,
		"userId":    userId,
		"doctorId":  doctorId,
		"rating":    rating,
		"review":    "",
		"createdAt": time.Now(),
		"updatedAt": time.Now(),
	}
	collection := db.OpenCollections(constants.RatingCollection)
	inserted, err := db.CreateOne(c, collection, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Println("Rating already exists for this pair: ", err)
			return nil, apperrors.Conflict(constants.RATING_ALREADY_EXISTS)
		}
		log.Println("Error from createOne: ", err)
		return nil, err
	}
	log.Println("Inserted: ", inserted.InsertedID)

	doctors := db.OpenCollections(constants.DoctorCollection)
	statsUpdate := bson.M{
		"$inc": bson.M{
			"ratingSum":   rating,
			"ratingCount": 1,
		},
	}
	if _, err := db.UpdateOne(c, doctors, bson.M{"code": doctorId}, statsUpdate); err != nil {
		log.Println("Error while updating doctor rating stats: ", err)
	}
	key := constants.DoctorKey + doctorId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting doctor from cache:", err)
	}
	return doc, nil
}

func fetchRatingByCode(c *gin.Context, ratingId string) (map[string]interface{}, error) {
	collection := db.OpenCollections(constants.RatingCollection)
	filter := bson.M{
		"code": ratingId,
	}
	result := make(map[string]interface{})
	err := db.FindOne(c, collection, filter, &result)
	if err != nil {
		log.Println("Error from findOne function: ", err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(constants.RATING_NOT_FOUND)
		}
		return nil, err
	}
	return result, nil
}

/*
* Attach a review to an existing rating
* Requires the rating, ownership, and no review set yet
 */
func CreateReview(c *gin.Context, ratingId string, data map[string]interface{}) (string, error) {
	userId := c.GetString("code")
	if err := common.GetTrimmedString(data, "review"); err != nil {
		log.Println("Error from getTrimmedString:", err)
		return "", apperrors.Validation(err.Error())
	}
	rating, err := fetchRatingByCode(c, ratingId)
	if err != nil {
		return "", err
	}
	if err := EnsureRatingOwner(rating, userId); err != nil {
		return "", err
	}
	if err := CanAttachReview(rating); err != nil {
		return "", err
	}
	return setReview(c, ratingId, data["review"].(string))
}

/*
* Edits go through this explicit path, not the create path
 */
func UpdateReview(c *gin.Context, ratingId string, data map[string]interface{}) (string, error) {
	userId := c.GetString("code")
	if err := common.GetTrimmedString(data, "review"); err != nil {
		log.Println("Error from getTrimmedString:", err)
		return "", apperrors.Validation(err.Error())
	}
	rating, err := fetchRatingByCode(c, ratingId)
	if err != nil {
		return "", err
	}
	if err := EnsureRatingOwner(rating, userId); err != nil {
		return "", err
	}
	return setReview(c, ratingId, data["review"].(string))
}

/*
* Delete clears the review text, the rating itself stays
* Ownership is checked before the write
 */
func DeleteReview(c *gin.Context, ratingId string) (string, error) {
	userId := c.GetString("code")
	rating, err := fetchRatingByCode(c, ratingId)
	if err != nil {
		return "", err
	}
	if err := EnsureRatingOwner(rating, userId); err != nil {
		return "", err
	}
	return setReview(c, ratingId, "")
}

func setReview(c *gin.Context, ratingId, review string) (string, error) {
	collection := db.OpenCollections(constants.RatingCollection)
	filter := bson.M{
		"code": ratingId,
	}
	update := bson.M{
		"$set": bson.M{
			"review":    review,
			"updatedAt": time.Now(),
		},
	}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne: ", err)
		return "", err
	}
	log.Println("Updated: ", updated.ModifiedCount)

	key := constants.RatingKey + ratingId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting rating from cache:", err)
	}
	return "Updated Successfully", nil
}

/*
* All ratings for one doctor
 */
func FetchDoctorRatings(c *gin.Context, doctorId string) ([]interface{}, error) {
	if _, err := FetchDoctorByCode(c, doctorId); err != nil {
		return nil, err
	}
	collection := db.OpenCollections(constants.RatingCollection)
	filter := bson.M{
		"doctorId": doctorId,
	}
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return docs, nil
}
