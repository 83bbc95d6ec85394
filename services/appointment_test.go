package services

import (
	"net/http"
	"testing"

	"MediBook/apperrors"
	"MediBook/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePaymentMethod(t *testing.T) {
	assert.NoError(t, ValidatePaymentMethod(constants.PaymentCash))
	assert.NoError(t, ValidatePaymentMethod(constants.PaymentCard))

	err := ValidatePaymentMethod("bitcoin")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))

	err = ValidatePaymentMethod("")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestBuildAppointment_Cash(t *testing.T) {
	appointment := BuildAppointment(AppointmentInput{
		Code:          "A0001",
		PatientId:     "P0001",
		DoctorId:      "D0001",
		Date:          "2026-09-01",
		Time:          "10:30",
		PaymentMethod: constants.PaymentCash,
	})

	assert.Equal(t, "A0001", appointment["code"])
	assert.Equal(t, "P0001", appointment["patientId"])
	assert.Equal(t, "D0001", appointment["doctorId"])
	assert.Equal(t, "2026-09-01", appointment["date"])
	assert.Equal(t, "10:30", appointment["time"])
	assert.Equal(t, constants.PaymentCash, appointment["paymentMethod"])
	assert.Equal(t, constants.StatusPending, appointment["status"])
	assert.Equal(t, "P0001", appointment["createdBy"])
	_, hasSession := appointment["sessionId"]
	assert.False(t, hasSession)
}

func TestBuildAppointment_CardCarriesSession(t *testing.T) {
	appointment := BuildAppointment(AppointmentInput{
		Code:          "A0002",
		PatientId:     "P0001",
		DoctorId:      "D0001",
		Date:          "2026-09-01",
		Time:          "11:00",
		PaymentMethod: constants.PaymentCard,
		SessionId:     "cs_test_123",
	})

	assert.Equal(t, constants.PaymentCard, appointment["paymentMethod"])
	assert.Equal(t, "cs_test_123", appointment["sessionId"])
	assert.Equal(t, constants.StatusPending, appointment["status"])
}
