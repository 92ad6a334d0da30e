// Package notification stores user notifications and pushes them to
// connected users over WebSocket.
package notification

import (
	"context"
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	notifications NotificationRepository
	pusher        Pusher
}

// NewService accepts a nil pusher for processes without live sockets.
func NewService(notifications NotificationRepository, pusher Pusher) *Service {
	return &Service{notifications: notifications, pusher: pusher}
}

func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, error) {
	if req.ClientID == nil && req.TechnicianID == nil {
		return nil, ErrNoAddressee
	}

	n := &domain.Notification{
		ClientID:     req.ClientID,
		TechnicianID: req.TechnicianID,
		Title:        strings.TrimSpace(req.Title),
		Message:      strings.TrimSpace(req.Message),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	s.push(n)
	return n, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// ReadAll lists notifications, newest first.
func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Notification, error) {
	f := repository.NotificationFilter{ClientID: q.ClientID, TechnicianID: q.TechnicianID, IsRead: q.IsRead}
	return s.notifications.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateNotificationRequest) (*domain.Notification, error) {
	n, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	read, ok, err := optional.NonNull(req.IsRead, "is_read")
	if err != nil {
		return nil, err
	}
	if !ok || read == n.IsRead {
		return n, nil
	}

	changed, err := s.notifications.SetRead(ctx, id, read)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, ErrNotFound
	}
	n.IsRead = read
	return n, nil
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return s.Update(ctx, id, UpdateNotificationRequest{IsRead: optional.Of(true)})
}

// MarkAllRead marks every unread notification of one user and returns how
// many changed.
func (s *Service) MarkAllRead(ctx context.Context, role domain.UserRole, userID uuid.UUID) (int64, error) {
	f, err := ownerFilter(role, userID)
	if err != nil {
		return 0, err
	}
	return s.notifications.MarkAllRead(ctx, f)
}

func (s *Service) CountUnread(ctx context.Context, role domain.UserRole, userID uuid.UUID) (int64, error) {
	f, err := ownerFilter(role, userID)
	if err != nil {
		return 0, err
	}
	return s.notifications.CountUnread(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.notifications.Delete(ctx, id)
}

func (s *Service) push(n *domain.Notification) {
	if s.pusher == nil {
		return
	}
	role, id, ok := n.Recipient()
	if !ok {
		return
	}
	s.pusher.Push(role, id, Push{Type: "notification", Notification: n})
}

func ownerFilter(role domain.UserRole, userID uuid.UUID) (repository.NotificationFilter, error) {
	switch role {
	case domain.RoleClient:
		return repository.NotificationFilter{ClientID: &userID}, nil
	case domain.RoleTechnician:
		return repository.NotificationFilter{TechnicianID: &userID}, nil
	default:
		return repository.NotificationFilter{}, ErrInvalidOwner
	}
}
