package services

import (
	"errors"
	"log"

	"MediBook/apperrors"
	"MediBook/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EMR documents are created by the clinical workflow; this service only reads.

/*
* Look up the record keyed by its appointment
* Only the owning patient or the treating doctor may read it
 */
func FetchEMRByAppointment(c *gin.Context, appointmentId string) (map[string]interface{}, error) {
	code := c.GetString("code")
	collection := db.OpenCollections(constants.EMRCollection)
	filter := bson.M{
		"appointmentId": appointmentId,
	}
	result := make(map[string]interface{})
	err := db.FindOne(c, collection, filter, &result)
	if err != nil {
		log.Println("Error from findOne function: ", err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(constants.EMR_NOT_FOUND)
		}
		return nil, err
	}
	if result["patientId"] != code && result["doctorId"] != code {
		log.Println("This user has no access to this medical record")
		return nil, apperrors.Authorization("no access to this medical record")
	}
	key := constants.EMRKey + appointmentId
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return result, nil
}

/*
* All records belonging to the acting patient
 */
func FetchMyEMRs(c *gin.Context) ([]interface{}, error) {
	code := c.GetString("code")
	if code == "" {
		return nil, apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	collection := db.OpenCollections(constants.EMRCollection)
	filter := bson.M{
		"patientId": code,
	}
	docs, err := db.FindAll(c, collection, filter, nil)
	if err != nil {
		log.Println("Error from findAll: ", err)
		return nil, err
	}
	return docs, nil
}
