package notification

import (
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"

	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	ClientID     *uuid.UUID `json:"client_id"`
	TechnicianID *uuid.UUID `json:"technician_id"`
	Title        string     `json:"title" validate:"required,max=200"`
	Message      string     `json:"message" validate:"required,max=2000"`
}

type UpdateNotificationRequest struct {
	IsRead optional.Value[bool] `json:"is_read"`
}

type ListQuery struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	IsRead       *bool
	Skip         int
	Limit        int
}

type UnreadCount struct {
	Unread int64 `json:"unread"`
}

type MarkedCount struct {
	Updated int64 `json:"updated"`
}

// Push is the frame written to a live socket.
type Push struct {
	Type         string `json:"type"`
	Notification any    `json:"notification"`
}
