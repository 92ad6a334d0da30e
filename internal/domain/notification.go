package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID  `json:"id"`
	ClientID     *uuid.UUID `json:"client_id"`
	TechnicianID *uuid.UUID `json:"technician_id"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	IsRead       bool       `json:"is_read"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Recipient returns the role and id the notification is addressed to,
// preferring the technician when both are set.
func (n *Notification) Recipient() (UserRole, uuid.UUID, bool) {
	if n.TechnicianID != nil {
		return RoleTechnician, *n.TechnicianID, true
	}
	if n.ClientID != nil {
		return RoleClient, *n.ClientID, true
	}
	return "", uuid.Nil, false
}
