package services

import (
	"net/http"
	"testing"
	"time"

	"MediBook/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAsFrequency(t *testing.T) {
	n, err := AsFrequency(float64(8))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	n, err = AsFrequency("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = AsFrequency(6)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestAsFrequency_Invalid(t *testing.T) {
	cases := []interface{}{nil, 0, -4, 2.5, "eight", ""}
	for _, v := range cases {
		_, err := AsFrequency(v)
		require.Error(t, err, v)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	}
}

func TestNextTriggerFrom(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(8*time.Hour), NextTriggerFrom(now, 8))
}

func TestBuildReminderUpdate_FrequencyRecomputesTrigger(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	set, err := BuildReminderUpdate(map[string]interface{}{
		"frequency": float64(6),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, 6, set["reminders.$.frequency"])
	assert.Equal(t, now.Add(6*time.Hour), set["reminders.$.nextTrigger"])
	assert.Equal(t, now, set["reminders.$.updatedAt"])
}

func TestBuildReminderUpdate_NoFrequencyKeepsTrigger(t *testing.T) {
	now := time.Now()
	set, err := BuildReminderUpdate(map[string]interface{}{
		"name": "ibuprofen",
		"type": "tablet",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "ibuprofen", set["reminders.$.name"])
	assert.Equal(t, "tablet", set["reminders.$.type"])
	_, hasTrigger := set["reminders.$.nextTrigger"]
	assert.False(t, hasTrigger, "nextTrigger must stay untouched without a new frequency")
}

func TestBuildReminderUpdate_EmptyInput(t *testing.T) {
	_, err := BuildReminderUpdate(map[string]interface{}{}, time.Now())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
}

func TestBuildReminderUpdate_BadFrequency(t *testing.T) {
	_, err := BuildReminderUpdate(map[string]interface{}{
		"frequency": "soon",
	}, time.Now())
	require.Error(t, err)
}

func TestExtractReminders(t *testing.T) {
	patient := map[string]interface{}{
		"reminders": primitive.A{
			map[string]interface{}{"id": "r1", "name": "aspirin", "active": true},
			map[string]interface{}{"id": "r2", "name": "insulin", "active": false},
		},
	}
	reminders, err := ExtractReminders(patient)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "aspirin", reminders[0]["name"])
	assert.Equal(t, false, reminders[1]["active"])
}

func TestExtractReminders_MissingList(t *testing.T) {
	reminders, err := ExtractReminders(map[string]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestExtractReminders_InvalidType(t *testing.T) {
	_, err := ExtractReminders(map[string]interface{}{"reminders": "oops"})
	assert.Error(t, err)
}
