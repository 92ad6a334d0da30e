package notification

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	List(ctx context.Context, f repository.NotificationFilter, p repository.Page) ([]domain.Notification, error)
	CountUnread(ctx context.Context, f repository.NotificationFilter) (int64, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) (bool, error)
	MarkAllRead(ctx context.Context, f repository.NotificationFilter) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Pusher delivers a payload to a connected user. Hub implements it.
type Pusher interface {
	Push(role domain.UserRole, userID uuid.UUID, v any) bool
}
