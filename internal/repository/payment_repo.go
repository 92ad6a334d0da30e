package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	BookingID    uuid.UUID `gorm:"column:booking_id;type:uuid;not null;uniqueIndex"`
	ClientID     uuid.UUID `gorm:"column:client_id;type:uuid;not null;index"`
	TechnicianID uuid.UUID `gorm:"column:technician_id;type:uuid;not null;index"`
	Amount       float64   `gorm:"column:amount;not null"`
	Status       string    `gorm:"column:status;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (paymentModel) TableName() string { return "payment" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:           m.ID,
		BookingID:    m.BookingID,
		ClientID:     m.ClientID,
		TechnicianID: m.TechnicianID,
		Amount:       m.Amount,
		Status:       domain.PaymentStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return paymentModel{
		ID:           id,
		BookingID:    p.BookingID,
		ClientID:     p.ClientID,
		TechnicianID: p.TechnicianID,
		Amount:       p.Amount,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type PaymentFilter struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	Status       *domain.PaymentStatus
	MinAmount    *float64
	MaxAmount    *float64
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&paymentModel{}).Where("booking_id = ?", bookingID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	var m paymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) List(ctx context.Context, f PaymentFilter, p Page) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx).Model(&paymentModel{})
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.TechnicianID != nil {
		q = q.Where("technician_id = ?", *f.TechnicianID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}

	var rows []paymentModel
	if err := p.apply(q.Order("amount ASC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayment(m))
	}
	return out, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return mapWriteError(err)
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &paymentModel{}, id)
}
