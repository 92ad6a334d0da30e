package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentEscrow    PaymentStatus = "escrow"
	PaymentCompleted PaymentStatus = "completed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentEscrow, PaymentCompleted:
		return true
	}
	return false
}

type Payment struct {
	ID           uuid.UUID     `json:"id"`
	BookingID    uuid.UUID     `json:"booking_id"`
	ClientID     uuid.UUID     `json:"client_id"`
	TechnicianID uuid.UUID     `json:"technician_id"`
	Amount       float64       `json:"amount"`
	Status       PaymentStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
