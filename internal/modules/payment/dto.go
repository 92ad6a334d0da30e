package payment

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID    uuid.UUID            `json:"booking_id" validate:"required"`
	ClientID     uuid.UUID            `json:"client_id" validate:"required"`
	TechnicianID uuid.UUID            `json:"technician_id" validate:"required"`
	Amount       float64              `json:"amount" validate:"required,gt=0"`
	Status       domain.PaymentStatus `json:"status" validate:"omitempty,oneof=pending escrow completed"`
}

type UpdatePaymentRequest struct {
	Amount optional.Value[float64]              `json:"amount"`
	Status optional.Value[domain.PaymentStatus] `json:"status"`
}

type ListQuery struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	Status       *domain.PaymentStatus
	MinAmount    *float64
	MaxAmount    *float64
	Skip         int
	Limit        int
}
