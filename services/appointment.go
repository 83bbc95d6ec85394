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
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func ValidatePaymentMethod(method string) error {
	if method != constants.PaymentCash && method != constants.PaymentCard {
		return apperrors.Validation(constants.INVALID_PAYMENT_METHOD)
	}
	return nil
}

type AppointmentInput struct {
	Code          string
	PatientId     string
	DoctorId      string
	Date          string
	Time          string
	PaymentMethod string
	SessionId     string
}

/*
* Build the new appointment document
* Status starts out pending, the clinical workflow completes it
 */
func BuildAppointment(input AppointmentInput) map[string]interface{} {
	appointment := map[string]interface{}{
		"code":          input.Code,
		"patientId":     input.PatientId,
		"doctorId":      input.DoctorId,
		"date":          input.Date,
		"time":          input.Time,
		"paymentMethod": input.PaymentMethod,
		"status":        constants.StatusPending,
		"createdAt":     time.Now(),
		"createdBy":     input.PatientId,
		"updatedAt":     time.Now(),
		"updatedBy":     input.PatientId,
	}
	if input.SessionId != "" {
		appointment["sessionId"] = input.SessionId
	}
	return appointment
}

/*
* Get the acting patient code from context
* Validate date, time and payment method
* Resolve doctor and patient, both must exist
* Run the availability checks against both parties before any write
* Cash books directly, card goes through the checkout collaborator first
 */
func BookAppointment(c *gin.Context, payments *PaymentService, doctorId string, data map[string]interface{}) (map[string]interface{}, error) {
	patientId := c.GetString("code")
	if patientId == "" {
		log.Println("Unable to get patient code from context")
		return nil, apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	if doctorId == "" {
		return nil, apperrors.Validation("doctorId is required")
	}
	fields := []string{"date", "time", "paymentMethod"}
	for _, f := range fields {
		if err := common.GetTrimmedString(data, f); err != nil {
			log.Println("Error from getTrimmedString:", err)
			return nil, apperrors.Validation(err.Error())
		}
	}
	paymentMethod := data["paymentMethod"].(string)
	if err := ValidatePaymentMethod(paymentMethod); err != nil {
		return nil, err
	}
	dateModified, err := common.NormalizeDate(data["date"].(string))
	if err != nil {
		log.Println("Error from normalizeDate: ", err)
		return nil, apperrors.Validation(err.Error())
	}
	timeGiven := data["time"].(string)

	doctor, err := FetchDoctorByCode(c, doctorId)
	if err != nil {
		log.Println("Error from fetchDoctorByCode: ", err)
		return nil, err
	}
	patient, err := FetchPatientByCode(c, patientId)
	if err != nil {
		log.Println("Error from fetchPatientByCode: ", err)
		return nil, err
	}

	availableTimes, err := ExtractStringList(doctor["availableTimes"])
	if err != nil {
		log.Println("Error from ExtractStringList: ", err)
		return nil, err
	}
	if err := ValidateDoctorTime(availableTimes, timeGiven); err != nil {
		return nil, err
	}
	if err := EnsureDoctorSlotFree(c, doctorId, dateModified, timeGiven); err != nil {
		return nil, err
	}
	if err := EnsurePatientSlotFree(c, patient["code"].(string), dateModified, timeGiven); err != nil {
		return nil, err
	}

	if paymentMethod == constants.PaymentCard {
		session, err := payments.CreateCheckoutSession(c, doctor, dateModified, timeGiven)
		if err != nil {
			log.Println("Error from createCheckoutSession: ", err)
			return nil, err
		}
		appointment, err := MaterializeBooking(c, session, patientId, doctorId, dateModified, timeGiven)
		if err != nil {
			log.Println("Error from materializeBooking: ", err)
			return nil, apperrors.Upstream(constants.BOOKING_MATERIALIZE_FAILED)
		}
		return map[string]interface{}{
			"appointment": appointment,
			"sessionId":   session.ID,
			"paymentURL":  session.URL,
		}, nil
	}

	appointment, err := createAppointment(c, AppointmentInput{
		PatientId:     patientId,
		DoctorId:      doctorId,
		Date:          dateModified,
		Time:          timeGiven,
		PaymentMethod: constants.PaymentCash,
	})
	if err != nil {
		log.Println("Error from createAppointment: ", err)
		return nil, err
	}
	return map[string]interface{}{
		"appointment": appointment,
	}, nil
}

/*
* Materialize the booking once the checkout session exists
* The session is the confirmation signal in this flow
 */
func MaterializeBooking(c *gin.Context, session *stripe.CheckoutSession, patientId, doctorId, date, timeGiven string) (map[string]interface{}, error) {
	return createAppointment(c, AppointmentInput{
		PatientId:     patientId,
		DoctorId:      doctorId,
		Date:          date,
		Time:          timeGiven,
		PaymentMethod: constants.PaymentCard,
		SessionId:     session.ID,
	})
}

/*
* One insert, the appointment document is the only linkage state
* Patient and doctor listings are derived queries over this collection
 */
func createAppointment(c *gin.Context, input AppointmentInput) (map[string]interface{}, error) {
	code, err := common.GenerateEmpCode(constants.AppointmentCollection)
	if err != nil {
		log.Println("Error from generateEmpCode: ", err)
		return nil, err
	}
	input.Code = code
	appointment := BuildAppointment(input)

	collection := db.OpenCollections(constants.AppointmentCollection)
	inserted, err := db.CreateOne(c, collection, appointment)
	if err != nil {
		log.Println("Error from createOne: ", err)
		return nil, err
	}
	log.Println("Inserted: ", inserted.InsertedID)

	key := constants.AppointmentKey + code
	if err := redis.SetCache(c, key, appointment); err != nil {
		log.Println("Error from setCache: ", err)
	}
	return appointment, nil
}

/*
* Point lookup by code
* Only a party to the appointment may read it
 */
func FetchAppointmentByCode(c *gin.Context, appointmentId string) (map[string]interface{}, error) {
	code := c.GetString("code")
	collection := db.OpenCollections(constants.AppointmentCollection)
	filter := bson.M{
		"code": appointmentId,
	}
	result := make(map[string]interface{})
	err := db.FindOne(c, collection, filter, &result)
	if err != nil {
		log.Println("Error from findOne function: ", err)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(constants.APPOINTMENT_NOT_FOUND)
		}
		return nil, err
	}
	if result["patientId"] != code && result["doctorId"] != code {
		log.Println("This user is not a party to this appointment")
		return nil, apperrors.Authorization("no access to this appointment")
	}
	return result, nil
}

/*
* The acting patient's appointments, newest first is left to the caller
 */
func FetchMyAppointments(c *gin.Context) ([]interface{}, error) {
	code := c.GetString("code")
	if code == "" {
		return nil, apperrors.Authorization(constants.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	collection := db.OpenCollections(constants.AppointmentCollection)
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

/*
* Derived listing for a doctor, same collection, different key
 */
func FetchDoctorAppointments(c *gin.Context, doctorId string) ([]interface{}, error) {
	if _, err := FetchDoctorByCode(c, doctorId); err != nil {
		return nil, err
	}
	collection := db.OpenCollections(constants.AppointmentCollection)
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
