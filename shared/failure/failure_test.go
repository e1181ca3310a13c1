package failure_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("check-out must be after check-in")), wantCode: http.StatusBadRequest, wantMsg: "check-out must be after check-in"},
		{name: "bad request from string", err: failure.BadRequestFromString("room is not available"), wantCode: http.StatusBadRequest, wantMsg: "room is not available"},
		{name: "unauthorized", err: failure.Unauthorized("Missing authorization header"), wantCode: http.StatusUnauthorized, wantMsg: "Missing authorization header"},
		{name: "forbidden", err: failure.Forbidden("account is disabled"), wantCode: http.StatusForbidden, wantMsg: "account is disabled"},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "conflict", err: failure.Conflict("room still has bookings"), wantCode: http.StatusConflict, wantMsg: "room still has bookings"},
		{name: "predefined forbidden", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
			assert.Equal(t, tt.wantMsg, failure.Message(tt.err))
		})
	}

	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to get room: %w", failure.NotFound("room not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, "room not found", failure.Message(wrapped))
}

func TestGetCode_Unexpected(t *testing.T) {
	err := errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, failure.InternalMessage, failure.Message(err))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestDecode(t *testing.T) {
	var payload struct {
		Status string `json:"status"`
	}

	cause := json.Unmarshal([]byte(`{"status":`), &payload)
	err := failure.Decode("room event", cause)

	assert.True(t, failure.IsDecode(err))
	assert.True(t, failure.IsDecode(fmt.Errorf("consume: %w", err)))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, failure.Message(err), "failed to decode room event")

	assert.NoError(t, failure.Decode("room event", nil))
	assert.False(t, failure.IsDecode(errors.New("plain")))
}
