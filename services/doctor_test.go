package services

import (
	"net/http"
	"testing"

	"MediBook/apperrors"
	"MediBook/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCoordinates(t *testing.T) {
	lng, lat, err := ParseCoordinates("30.05,31.23")
	require.NoError(t, err)
	assert.Equal(t, 30.05, lat)
	assert.Equal(t, 31.23, lng)
}

func TestParseCoordinates_Whitespace(t *testing.T) {
	lng, lat, err := ParseCoordinates(" 30.05 , 31.23 ")
	require.NoError(t, err)
	assert.Equal(t, 30.05, lat)
	assert.Equal(t, 31.23, lng)
}

func TestParseCoordinates_Invalid(t *testing.T) {
	cases := []string{"", "30.05", "a,b", "30.05,31.23,7"}
	for _, coords := range cases {
		_, _, err := ParseCoordinates(coords)
		require.Error(t, err, coords)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	}
}

func TestBuildNearFilter(t *testing.T) {
	filter := BuildNearFilter(31.23, 30.05, constants.MaxSearchRadiusMeters)

	near, ok := filter["$near"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, constants.MaxSearchRadiusMeters, near["$maxDistance"])

	geometry, ok := near["$geometry"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "Point", geometry["type"])
	assert.Equal(t, []float64{31.23, 30.05}, geometry["coordinates"])
}

func TestProjectDoctorSummary(t *testing.T) {
	doctor := map[string]interface{}{
		"code":        "D0001",
		"name":        "House",
		"speciality":  "cardiology",
		"ratingSum":   9.0,
		"ratingCount": 2,
		"fee":         150.0,
		"mail":        "house@example.com",
	}
	summary := ProjectDoctorSummary(doctor)

	assert.Equal(t, "D0001", summary["code"])
	assert.Equal(t, "cardiology", summary["speciality"])
	assert.Equal(t, 4.5, summary["averageRating"])
	_, hasMail := summary["mail"]
	assert.False(t, hasMail)
}

func TestProjectDoctorSummary_NoRatings(t *testing.T) {
	summary := ProjectDoctorSummary(map[string]interface{}{
		"code": "D0002",
		"name": "Wilson",
	})
	assert.Equal(t, 0.0, summary["averageRating"])
}

func TestBuildNearOrder(t *testing.T) {
	filter := BuildNearOrder(31.23, 30.05)

	near, ok := filter["$near"].(bson.M)
	require.True(t, ok)
	_, capped := near["$maxDistance"]
	assert.False(t, capped)

	geometry, ok := near["$geometry"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, []float64{31.23, 30.05}, geometry["coordinates"])
}

func TestLocationOf(t *testing.T) {
	patient := map[string]interface{}{
		"location": map[string]interface{}{
			"type":        "Point",
			"coordinates": primitive.A{31.23, 30.05},
		},
	}
	lng, lat, ok := locationOf(patient)
	require.True(t, ok)
	assert.Equal(t, 31.23, lng)
	assert.Equal(t, 30.05, lat)
}

func TestLocationOf_Missing(t *testing.T) {
	_, _, ok := locationOf(map[string]interface{}{})
	assert.False(t, ok)
}

func TestBuildNameSearchFilter(t *testing.T) {
	patient := map[string]interface{}{
		"location": map[string]interface{}{
			"type":        "Point",
			"coordinates": primitive.A{31.23, 30.05},
		},
	}
	filter := BuildNameSearchFilter("hou", "cardio", patient)

	matches, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, matches, 2)

	location, ok := filter["location"].(bson.M)
	require.True(t, ok)
	near, ok := location["$near"].(bson.M)
	require.True(t, ok)
	_, capped := near["$maxDistance"]
	assert.False(t, capped)
}

func TestBuildNameSearchFilter_NoStoredLocation(t *testing.T) {
	filter := BuildNameSearchFilter("hou", "", map[string]interface{}{})

	_, hasLocation := filter["location"]
	assert.False(t, hasLocation)

	matches, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, matches, 1)
}

func TestSummariesOrNotFound(t *testing.T) {
	summaries, err := SummariesOrNotFound([]interface{}{
		map[string]interface{}{"code": "D0001", "name": "House"},
	})
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "D0001", summaries[0]["code"])
}

func TestSummariesOrNotFound_Empty(t *testing.T) {
	_, err := SummariesOrNotFound([]interface{}{})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestParsePositiveNumber(t *testing.T) {
	for _, v := range []interface{}{72.0, float32(72), 72, int32(72), int64(72)} {
		n, err := ParsePositiveNumber(v, "weight")
		require.NoError(t, err)
		assert.Equal(t, 72.0, n, v)
	}
}

func TestParsePositiveNumber_Invalid(t *testing.T) {
	for _, v := range []interface{}{"72", nil, 0, -5.0, map[string]interface{}{}} {
		_, err := ParsePositiveNumber(v, "fee")
		require.Error(t, err, v)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	}
}
