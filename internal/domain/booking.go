package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingRequested  BookingStatus = "REQUESTED"
	BookingAccepted   BookingStatus = "ACCEPTED"
	BookingRejected   BookingStatus = "REJECTED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingRequested, BookingAccepted, BookingRejected,
		BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Active statuses still hold the technician's time.
func (s BookingStatus) Active() bool {
	return s == BookingRequested || s == BookingAccepted || s == BookingInProgress
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingRequested:  {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted:   {BookingInProgress, BookingCancelled},
	BookingInProgress: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether a booking may move from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReleasedStatuses no longer block the technician's slot.
var ReleasedStatuses = []BookingStatus{BookingRejected, BookingCancelled}

type Booking struct {
	ID           uuid.UUID     `json:"id"`
	ClientID     uuid.UUID     `json:"client_id"`
	TechnicianID uuid.UUID     `json:"technician_id"`
	ServiceName  string        `json:"service_name"`
	Description  string        `json:"description"`
	TimeSlot     TimeSlot      `json:"timeslot"`
	Location     Location      `json:"location"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}
