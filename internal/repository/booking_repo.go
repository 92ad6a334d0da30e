package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	ClientID     uuid.UUID      `gorm:"column:client_id;type:uuid;not null;index"`
	TechnicianID uuid.UUID      `gorm:"column:technician_id;type:uuid;not null;index:idx_booking_technician_date"`
	ServiceName  string         `gorm:"column:service_name;not null"`
	Description  string         `gorm:"column:description;not null"`
	SlotDate     datatypes.Date `gorm:"column:slot_date;not null;index:idx_booking_technician_date"`
	StartTime    datatypes.Time `gorm:"column:start_time;not null"`
	EndTime      datatypes.Time `gorm:"column:end_time;not null"`
	LocationFields
	Status    string    `gorm:"column:status;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (bookingModel) TableName() string { return "booking" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:           m.ID,
		ClientID:     m.ClientID,
		TechnicianID: m.TechnicianID,
		ServiceName:  m.ServiceName,
		Description:  m.Description,
		TimeSlot:     domain.TimeSlot{Date: m.SlotDate, Start: m.StartTime, End: m.EndTime},
		Location:     m.LocationFields.toDomain(),
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return bookingModel{
		ID:             id,
		ClientID:       b.ClientID,
		TechnicianID:   b.TechnicianID,
		ServiceName:    b.ServiceName,
		Description:    b.Description,
		SlotDate:       b.TimeSlot.Date,
		StartTime:      b.TimeSlot.Start,
		EndTime:        b.TimeSlot.End,
		LocationFields: toLocationFields(b.Location),
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
}

type BookingFilter struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	Status       *domain.BookingStatus
	Date         *datatypes.Date
}

// Create inserts b unless the technician already holds an overlapping slot on
// that date. The check and the insert share one serializable transaction;
// on PostgreSQL the booking_no_overlap exclusion constraint backs it up.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		taken, err := hasBookingConflict(ctx, tx, m.TechnicianID, b.TimeSlot)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return mapWriteError(err)
	}
	*b = *toDomainBooking(m)
	return nil
}

// HasConflict reports whether an active booking of the technician overlaps
// slot as a half-open interval. Touching endpoints do not overlap.
func (r *BookingRepository) HasConflict(ctx context.Context, technicianID uuid.UUID, slot domain.TimeSlot) (bool, error) {
	return hasBookingConflict(ctx, r.db, technicianID, slot)
}

func hasBookingConflict(ctx context.Context, db *gorm.DB, technicianID uuid.UUID, slot domain.TimeSlot) (bool, error) {
	released := make([]string, 0, len(domain.ReleasedStatuses))
	for _, s := range domain.ReleasedStatuses {
		released = append(released, string(s))
	}

	var cnt int64
	err := db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("technician_id = ? AND slot_date = ?", technicianID, slot.Date).
		Where("start_time < ? AND end_time > ?", slot.End, slot.Start).
		Where("status NOT IN ?", released).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter, p Page) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.TechnicianID != nil {
		q = q.Where("technician_id = ?", *f.TechnicianID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.Date != nil {
		q = q.Where("slot_date = ?", *f.Date)
	}

	var rows []bookingModel
	if err := p.apply(q.Order("slot_date ASC, start_time ASC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return mapWriteError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &bookingModel{}, id)
}
