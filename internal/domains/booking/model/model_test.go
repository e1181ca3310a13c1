package model_test

import (
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, _ := time.Parse(model.DateLayout, value)

	return parsed
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "three nights", checkIn: date("2026-03-01"), checkOut: date("2026-03-04"), want: 3},
		{name: "same day counts as one", checkIn: date("2026-03-01"), checkOut: date("2026-03-01"), want: 1},
		{name: "reversed dates count as one", checkIn: date("2026-03-04"), checkOut: date("2026-03-01"), want: 1},
		{name: "partial day rounds up", checkIn: date("2026-03-01"), checkOut: date("2026-03-02").Add(2 * time.Hour), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	assert.InDelta(t, 840.0, model.TotalPrice(date("2026-03-01"), date("2026-03-04"), 280), 0.001)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusCheckedIn, model.StatusCancelled},
		model.StatusCheckedIn: {model.StatusCheckedOut},
	}

	for _, from := range model.AllStatuses() {
		for _, to := range model.AllStatuses() {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, model.StatusCheckedOut.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.False(t, model.StatusCheckedIn.IsTerminal())
}

func TestStatus_RoomStatus(t *testing.T) {
	tests := []struct {
		status   model.Status
		want     roomModel.Status
		wantSide bool
	}{
		{status: model.StatusCheckedIn, want: roomModel.StatusOccupied, wantSide: true},
		{status: model.StatusCheckedOut, want: roomModel.StatusCleaning, wantSide: true},
		{status: model.StatusCancelled, want: roomModel.StatusAvailable, wantSide: true},
		{status: model.StatusConfirmed},
		{status: model.StatusPending},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, ok := tt.status.RoomStatus()
			assert.Equal(t, tt.wantSide, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3F2A9C1B", model.ShortID("3f2a9c1b-aaaa-bbbb-cccc-dddddddddddd"))
	assert.Equal(t, "AB", model.ShortID("ab"))
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, model.PaymentRefunded.IsValid())
	assert.False(t, model.PaymentStatus("Pending").IsValid())
}
