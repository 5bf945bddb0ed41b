package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
		assert.True(t, s.Valid(), "%s must be valid", s)
	}
	assert.False(t, BookingStatus("SHIPPED").Valid())
	assert.False(t, BookingStatus("pending").Valid(), "statuses are case sensitive")
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestCanCancelWindow(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := Booking{Status: BookingPending, CreatedAt: created}

	assert.True(t, b.CanCancel(created.Add(time.Minute)))
	assert.True(t, b.CanCancel(created.Add(23*time.Hour)))
	// The boundary itself is still inside the window.
	assert.True(t, b.CanCancel(created.Add(CancelWindow)))
	assert.False(t, b.CanCancel(created.Add(CancelWindow+time.Second)))
}

func TestCanCancelTerminalStates(t *testing.T) {
	created := time.Now()

	cancelled := Booking{Status: BookingCancelled, CreatedAt: created}
	assert.False(t, cancelled.CanCancel(created.Add(time.Minute)))

	completed := Booking{Status: BookingCompleted, CreatedAt: created}
	assert.False(t, completed.CanCancel(created.Add(time.Minute)))

	confirmed := Booking{Status: BookingConfirmed, CreatedAt: created}
	assert.True(t, confirmed.CanCancel(created.Add(time.Minute)))
}
