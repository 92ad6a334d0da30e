package domain

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TechnicianService struct {
	ID              uuid.UUID `json:"id"`
	TechnicianID    uuid.UUID `json:"technician_id"`
	ServiceID       uuid.UUID `json:"service_id"`
	ServiceName     string    `json:"service_name"`
	ExperienceYears int       `json:"experience_years"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"created_at"`
}
