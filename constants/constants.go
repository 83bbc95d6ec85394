package constants

// Collection names
const (
	DoctorCollection      = "DOCTOR"
	PatientCollection     = "PATIENT"
	AppointmentCollection = "APPOINTMENT"
	EMRCollection         = "EMR"
	RatingCollection      = "RATING"
)

// Cache key prefixes
const (
	DoctorKey      = "DOCTOR_"
	PatientKey     = "PATIENT_"
	AppointmentKey = "APPOINTMENT_"
	EMRKey         = "EMR_"
	RatingKey      = "RATING_"
)

// Payment methods
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Appointment statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Doctor search radius in meters
const MaxSearchRadiusMeters = 100000

// Error messages
const (
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT    = "unable to fetch code from context"
	DOCTOR_NOT_FOUND                     = "doctor not found"
	PATIENT_NOT_FOUND                    = "patient not found"
	APPOINTMENT_NOT_FOUND                = "appointment not found"
	EMR_NOT_FOUND                        = "medical record not found"
	RATING_NOT_FOUND                     = "rating not found"
	REMINDER_NOT_FOUND                   = "reminder not found"
	NO_DOCTORS_FOUND_NEARBY              = "no doctors found near this location"
	SLOT_NOT_IN_DOCTOR_SCHEDULE          = "doctor is not available at this time"
	DOCTOR_SLOT_ALREADY_BOOKED           = "doctor already has an appointment at this slot"
	PATIENT_SLOT_ALREADY_BOOKED          = "you already have an appointment at this slot"
	RATING_ALREADY_EXISTS                = "you have already rated this doctor"
	NO_COMPLETED_APPOINTMENT_WITH_DOCTOR = "no completed appointment with this doctor"
	REVIEW_ALREADY_SET                   = "a review already exists for this rating"
	NOT_RATING_OWNER                     = "this user does not own this rating"
	INVALID_PAYMENT_METHOD               = "payment method must be cash or card"
	INVALID_COORDINATES                  = "coordinates must be provided as lat,lng"
	CHECKOUT_SESSION_FAILED              = "unable to create checkout session"
	BOOKING_MATERIALIZE_FAILED           = "unable to confirm booking after payment"
	DIAGNOSIS_CALL_FAILED                = "unable to reach the diagnosis service"
)
