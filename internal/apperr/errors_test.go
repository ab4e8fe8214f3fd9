package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("Resource not found")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(Duplicate("Duplicate field value entered")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(Invalid("title", "cannot be blank")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(Unauthorized("Invalid credentials")))
	assert.Equal(t, http.StatusForbidden, StatusCode(Forbidden("nope")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, StatusCode(TooLarge("big")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))

	wrapped := fmt.Errorf("update project: %w", NotFound("Project not found"))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
	assert.Equal(t, "Project not found", PublicMessage(wrapped))
}

func TestPublicMessageHidesInternalErrors(t *testing.T) {
	assert.Equal(t, "Server Error", PublicMessage(errors.New("mongo: connection refused")))
}

func TestValidationErrorJoinsFieldsInOrder(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"title": "cannot be blank", "category": "must be a valid value"}}
	assert.Equal(t, "category: must be a valid value, title: cannot be blank", err.Error())
}
