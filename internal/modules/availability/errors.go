package availability

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
)

var (
	ErrNotFound           = apperr.NotFound("Technician availability not found")
	ErrTechnicianNotFound = apperr.NotFound("Technician not found")
	ErrInvalidTimeSlot    = apperr.BadRequest("timeslot is invalid: day must be 0-6 and start before end")
)

func errSlotTaken(slot domain.TimeSlotDay) error {
	return apperr.Conflictf("Technician already has availability at %s", slot)
}
