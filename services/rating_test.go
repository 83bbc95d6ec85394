package services

import (
	"net/http"
	"testing"

	"MediBook/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRatingValue(t *testing.T) {
	rating, err := ParseRatingValue(float64(4))
	require.NoError(t, err)
	assert.Equal(t, 4.0, rating)

	rating, err = ParseRatingValue(4.5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, rating)
}

func TestParseRatingValue_OutOfRange(t *testing.T) {
	cases := []interface{}{float64(0), float64(6), nil, "five"}
	for _, v := range cases {
		_, err := ParseRatingValue(v)
		require.Error(t, err, v)
		assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	}
}

func TestCanAttachReview_NoReviewYet(t *testing.T) {
	assert.NoError(t, CanAttachReview(map[string]interface{}{"review": ""}))
	assert.NoError(t, CanAttachReview(map[string]interface{}{}))
}

func TestCanAttachReview_AlreadySet(t *testing.T) {
	err := CanAttachReview(map[string]interface{}{"review": "great doctor"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.StatusOf(err))
}

func TestEnsureRatingOwner(t *testing.T) {
	rating := map[string]interface{}{"userId": "P0001"}
	assert.NoError(t, EnsureRatingOwner(rating, "P0001"))
}

func TestEnsureRatingOwner_NotOwner(t *testing.T) {
	rating := map[string]interface{}{"userId": "P0001"}
	err := EnsureRatingOwner(rating, "P0002")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))
}

func TestEnsureRatingOwner_MissingOwner(t *testing.T) {
	err := EnsureRatingOwner(map[string]interface{}{}, "P0001")
	assert.Error(t, err)
}
