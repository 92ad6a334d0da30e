package booking

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
)

var (
	ErrNotFound           = apperr.NotFound("Booking not found")
	ErrClientNotFound     = apperr.NotFound("Client not found")
	ErrTechnicianNotFound = apperr.NotFound("Technician not found")
	ErrTechnicianInactive = apperr.BadRequest("Technician is not active")
	ErrInvalidTimeSlot    = apperr.BadRequest("timeslot is invalid: start must be before end")
	ErrInvalidLocation    = apperr.BadRequest("location is invalid")
	ErrInvalidStatus      = apperr.BadRequest("status is invalid")
)

func errSlotTaken(slot domain.TimeSlot) error {
	return apperr.Conflictf("Technician already has a booking at %s, try a different time.", slot)
}

func errServiceNotOffered(name string) error {
	return apperr.BadRequestf("Technician does not offer the %s service", name)
}

func errTransition(from, to domain.BookingStatus) error {
	return apperr.BadRequestf("Cannot change booking status from %s to %s", from, to)
}
