package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validation("bad input")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(Authorization("not yours")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("missing")))
	assert.Equal(t, http.StatusConflict, StatusOf(Conflict("taken")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Upstream("down")))
}

func TestStatusOf_UnclassifiedError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}

func TestStatusOf_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("while booking: %w", Conflict("slot taken"))
	assert.Equal(t, http.StatusConflict, StatusOf(wrapped))
}

func TestAppError_Message(t *testing.T) {
	err := NotFound("doctor not found")
	assert.Equal(t, "doctor not found", err.Error())
}
