package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, date, start, end string) TimeSlot {
	t.Helper()
	ts, err := NewTimeSlot(date, start, end)
	require.NoError(t, err)
	return ts
}

func TestTimeSlot_Overlaps(t *testing.T) {
	a := mustSlot(t, "2025-06-01", "10:00", "11:00")

	assert.True(t, a.Overlaps(mustSlot(t, "2025-06-01", "10:30", "11:30")))
	assert.True(t, a.Overlaps(mustSlot(t, "2025-06-01", "09:00", "12:00")))
	assert.False(t, a.Overlaps(mustSlot(t, "2025-06-01", "11:00", "12:00")), "touching endpoints do not overlap")
	assert.False(t, a.Overlaps(mustSlot(t, "2025-06-01", "09:00", "10:00")))
	assert.False(t, a.Overlaps(mustSlot(t, "2025-06-02", "10:30", "11:30")), "different date")
}

func TestNewTimeSlot_Invalid(t *testing.T) {
	_, err := NewTimeSlot("2025-06-01", "11:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = NewTimeSlot("01/06/2025", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = NewTimeSlot("2025-06-01", "25:00", "26:00")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestTimeSlot_JSONRoundTrip(t *testing.T) {
	var ts TimeSlot
	require.NoError(t, json.Unmarshal([]byte(`{"slot_date":"2025-06-01","start_time":"10:00","end_time":"11:30:00"}`), &ts))

	assert.Equal(t, "2025-06-01 10:00:00-11:30:00", ts.String())

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slot_date":"2025-06-01","start_time":"10:00:00","end_time":"11:30:00"}`, string(b))
}

func TestTimeSlotDay_JSON(t *testing.T) {
	var ts TimeSlotDay
	require.NoError(t, json.Unmarshal([]byte(`{"day":0,"start_time":"08:00","end_time":"12:00"}`), &ts))
	assert.Equal(t, 0, ts.Day)
	assert.Equal(t, "08:00:00", FormatClock(ts.Start))

	assert.Error(t, json.Unmarshal([]byte(`{"start_time":"08:00","end_time":"12:00"}`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`{"day":7,"start_time":"08:00","end_time":"12:00"}`), &ts))
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, BookingRequested.CanTransitionTo(BookingAccepted))
	assert.True(t, BookingAccepted.CanTransitionTo(BookingInProgress))
	assert.True(t, BookingInProgress.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingCompleted.CanTransitionTo(BookingRequested))
	assert.False(t, BookingRejected.CanTransitionTo(BookingAccepted))
	assert.False(t, BookingRequested.CanTransitionTo(BookingCompleted))
}

func TestLocation_DistanceKm(t *testing.T) {
	jhb := Location{Name: "Johannesburg", Latitude: -26.2041, Longitude: 28.0473}
	pta := Location{Name: "Pretoria", Latitude: -25.7479, Longitude: 28.2293}

	d := jhb.DistanceKm(pta)
	assert.InDelta(t, 53.9, d, 1.5)
	assert.Zero(t, jhb.DistanceKm(jhb))
}
