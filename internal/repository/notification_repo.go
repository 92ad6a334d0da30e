package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ClientID     *uuid.UUID `gorm:"column:client_id;type:uuid;index"`
	TechnicianID *uuid.UUID `gorm:"column:technician_id;type:uuid;index"`
	Title        string     `gorm:"column:title;not null"`
	Message      string     `gorm:"column:message;not null"`
	IsRead       bool       `gorm:"column:is_read;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (notificationModel) TableName() string { return "notification" }

func toDomainNotification(m notificationModel) *domain.Notification {
	return &domain.Notification{
		ID:           m.ID,
		ClientID:     m.ClientID,
		TechnicianID: m.TechnicianID,
		Title:        m.Title,
		Message:      m.Message,
		IsRead:       m.IsRead,
		CreatedAt:    m.CreatedAt,
	}
}

type NotificationFilter struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	IsRead       *bool
}

func (f NotificationFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.TechnicianID != nil {
		q = q.Where("technician_id = ?", *f.TechnicianID)
	}
	if f.IsRead != nil {
		q = q.Where("is_read = ?", *f.IsRead)
	}
	return q
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := notificationModel{
		ID:           uuid.New(),
		ClientID:     n.ClientID,
		TechnicianID: n.TechnicianID,
		Title:        n.Title,
		Message:      n.Message,
		IsRead:       n.IsRead,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var m notificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainNotification(m), nil
}

func (r *NotificationRepository) List(ctx context.Context, f NotificationFilter, p Page) ([]domain.Notification, error) {
	q := f.apply(r.db.WithContext(ctx).Model(&notificationModel{}))

	var rows []notificationModel
	if err := p.apply(q.Order("created_at DESC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, f NotificationFilter) (int64, error) {
	unread := false
	f.IsRead = &unread
	var cnt int64
	err := f.apply(r.db.WithContext(ctx).Model(&notificationModel{})).Count(&cnt).Error
	return cnt, err
}

func (r *NotificationRepository) SetRead(ctx context.Context, id uuid.UUID, read bool) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notificationModel{}).Where("id = ?", id).Update("is_read", read)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// MarkAllRead requires an addressee in f and returns the number of rows changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, f NotificationFilter) (int64, error) {
	unread := false
	f.IsRead = &unread
	res := f.apply(r.db.WithContext(ctx).Model(&notificationModel{})).Update("is_read", true)
	return res.RowsAffected, res.Error
}

// PurgeRead deletes read notifications created before the cutoff.
func (r *NotificationRepository) PurgeRead(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, before).
		Delete(&notificationModel{})
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &notificationModel{}, id)
}
