package services

import (
	"net/http"
	"testing"

	"MediBook/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExtractStringList_PrimitiveA(t *testing.T) {
	raw := primitive.A{"10:00", "10:30", "11:00"}
	list, err := ExtractStringList(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, list)
}

func TestExtractStringList_PlainSlices(t *testing.T) {
	list, err := ExtractStringList([]interface{}{"10:00", "11:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00"}, list)

	list, err = ExtractStringList([]string{"09:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, list)
}

func TestExtractStringList_Nil(t *testing.T) {
	list, err := ExtractStringList(nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExtractStringList_InvalidType(t *testing.T) {
	_, err := ExtractStringList(42)
	assert.Error(t, err)
}

func TestValidateDoctorTime_Published(t *testing.T) {
	times := []string{"10:00", "10:30", "11:00"}
	assert.NoError(t, ValidateDoctorTime(times, "10:30"))
}

func TestValidateDoctorTime_NotPublished(t *testing.T) {
	times := []string{"10:00", "10:30"}
	err := ValidateDoctorTime(times, "15:00")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
}

func TestValidateDoctorTime_EmptySchedule(t *testing.T) {
	err := ValidateDoctorTime([]string{}, "10:00")
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
}
