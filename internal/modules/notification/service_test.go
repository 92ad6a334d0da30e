package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/events"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if args.Error(0) == nil {
		n.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) List(ctx context.Context, f repository.NotificationFilter, p repository.Page) ([]domain.Notification, error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, f repository.NotificationFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) (bool, error) {
	args := m.Called(ctx, id, read)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, f repository.NotificationFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) Push(role domain.UserRole, userID uuid.UUID, v any) bool {
	return m.Called(role, userID, v).Bool(0)
}

func TestCreate_PushesToAddressee(t *testing.T) {
	repo, pusher := new(MockNotificationRepository), new(MockPusher)
	svc := NewService(repo, pusher)
	ctx := context.Background()
	techID := uuid.New()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
	pusher.On("Push", domain.RoleTechnician, techID, mock.AnythingOfType("notification.Push")).Return(true)

	n, err := svc.Create(ctx, CreateNotificationRequest{TechnicianID: &techID, Title: " Hello ", Message: "World"})

	require.NoError(t, err)
	assert.Equal(t, "Hello", n.Title)
	pusher.AssertExpectations(t)
}

func TestCreate_RequiresAddressee(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateNotificationRequest{Title: "x", Message: "y"})

	assert.ErrorIs(t, err, ErrNoAddressee)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReadOne_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ReadOne(ctx, id)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()
	n := &domain.Notification{ID: uuid.New()}

	repo.On("GetByID", ctx, n.ID).Return(n, nil)
	repo.On("SetRead", ctx, n.ID, true).Return(true, nil)

	got, err := svc.MarkRead(ctx, n.ID)

	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestUpdate_Rules(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()
	n := &domain.Notification{ID: uuid.New(), IsRead: true}
	repo.On("GetByID", ctx, n.ID).Return(n, nil)

	_, err := svc.Update(ctx, n.ID, UpdateNotificationRequest{IsRead: optional.Null[bool]()})
	assert.EqualError(t, err, "is_read cannot be null")

	got, err := svc.Update(ctx, n.ID, UpdateNotificationRequest{IsRead: optional.Of(true)})
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	repo.AssertNotCalled(t, "SetRead", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkAllRead_FiltersByOwner(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()
	clientID := uuid.New()

	repo.On("MarkAllRead", ctx, repository.NotificationFilter{ClientID: &clientID}).Return(int64(3), nil)

	n, err := svc.MarkAllRead(ctx, domain.RoleClient, clientID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.MarkAllRead(ctx, domain.RoleAdmin, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestCountUnread(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()
	techID := uuid.New()

	repo.On("CountUnread", ctx, repository.NotificationFilter{TechnicianID: &techID}).Return(int64(2), nil)

	n, err := svc.CountUnread(ctx, domain.RoleTechnician, techID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestHandleEvent(t *testing.T) {
	clientID, techID, bookingID := uuid.New(), uuid.New(), uuid.New()
	booking := events.BookingEvent{
		BookingID:    bookingID,
		ClientID:     clientID,
		TechnicianID: techID,
		ServiceName:  "plumbing",
		Slot:         "2025-06-01 09:00:00-10:00:00",
		LocationName: "Soshanguve Block L",
		OccurredAt:   time.Now(),
	}

	tests := []struct {
		name      string
		key       string
		event     any
		wantTitle string
		toTech    bool
	}{
		{"booking created", events.KeyBookingCreated, withStatus(booking, "REQUESTED"), "Booking Request", true},
		{"booking accepted", events.KeyBookingStatusChanged, withStatus(booking, "ACCEPTED"), "Booking Accepted", false},
		{"booking in progress", events.KeyBookingStatusChanged, withStatus(booking, "IN_PROGRESS"), "Booking In Progress", false},
		{"payment escrow", events.KeyPaymentStatusChanged, events.PaymentEvent{BookingID: bookingID, ClientID: clientID, TechnicianID: techID, Amount: 300, Status: "escrow"}, "Payment Escrow", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockNotificationRepository)
			svc := NewService(repo, nil)
			ctx := context.Background()
			body, err := json.Marshal(tt.event)
			require.NoError(t, err)

			repo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
				if n.Title != tt.wantTitle {
					return false
				}
				if tt.toTech {
					return n.TechnicianID != nil && *n.TechnicianID == techID && n.ClientID == nil
				}
				return n.ClientID != nil && *n.ClientID == clientID && n.TechnicianID == nil
			})).Return(nil)

			require.NoError(t, svc.HandleEvent(ctx, tt.key, body))
			repo.AssertExpectations(t)
		})
	}
}

func TestHandleEvent_Malformed(t *testing.T) {
	svc := NewService(new(MockNotificationRepository), nil)

	err := svc.HandleEvent(context.Background(), events.KeyBookingCreated, []byte("{not json"))
	assert.ErrorIs(t, err, events.ErrMalformed)

	err = svc.HandleEvent(context.Background(), "booking.archived", []byte("{}"))
	assert.ErrorIs(t, err, events.ErrMalformed)
}

func TestLocalPublisher(t *testing.T) {
	repo := new(MockNotificationRepository)
	pub := NewLocalPublisher(NewService(repo, nil))
	ctx := context.Background()
	clientID := uuid.New()

	repo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Title == "Payment Pending" && *n.ClientID == clientID
	})).Return(nil)

	err := pub.Publish(ctx, events.KeyPaymentCreated, events.PaymentEvent{ClientID: clientID, Amount: 99.5, Status: "pending"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func withStatus(ev events.BookingEvent, status string) events.BookingEvent {
	ev.Status = status
	return ev
}
