package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type availabilityModel struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	TechnicianID uuid.UUID      `gorm:"column:technician_id;type:uuid;not null;uniqueIndex:idx_availability_slot"`
	Day          int            `gorm:"column:day;not null;uniqueIndex:idx_availability_slot"`
	StartTime    datatypes.Time `gorm:"column:start_time;not null;uniqueIndex:idx_availability_slot"`
	EndTime      datatypes.Time `gorm:"column:end_time;not null;uniqueIndex:idx_availability_slot"`
	Active       bool           `gorm:"column:active;not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (availabilityModel) TableName() string { return "technician_availability" }

func toDomainAvailability(m availabilityModel) *domain.TechnicianAvailability {
	return &domain.TechnicianAvailability{
		ID:           m.ID,
		TechnicianID: m.TechnicianID,
		TimeSlot:     domain.TimeSlotDay{Day: m.Day, Start: m.StartTime, End: m.EndTime},
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

func toAvailabilityModel(a *domain.TechnicianAvailability) availabilityModel {
	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return availabilityModel{
		ID:           id,
		TechnicianID: a.TechnicianID,
		Day:          a.TimeSlot.Day,
		StartTime:    a.TimeSlot.Start,
		EndTime:      a.TimeSlot.End,
		Active:       a.Active,
		CreatedAt:    a.CreatedAt,
	}
}

type AvailabilityFilter struct {
	TechnicianID *uuid.UUID
	Day          *int
	StartTime    *datatypes.Time
	EndTime      *datatypes.Time
	Active       *bool
}

// Create inserts a unless the technician already has the exact same slot.
func (r *AvailabilityRepository) Create(ctx context.Context, a *domain.TechnicianAvailability) error {
	m := toAvailabilityModel(a)
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		taken, err := slotExists(ctx, tx, m.TechnicianID, a.TimeSlot, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return slotWriteError(err)
	}
	*a = *toDomainAvailability(m)
	return nil
}

// Update saves a unless another row of the technician has the same slot.
func (r *AvailabilityRepository) Update(ctx context.Context, a *domain.TechnicianAvailability) error {
	m := toAvailabilityModel(a)
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		taken, err := slotExists(ctx, tx, m.TechnicianID, a.TimeSlot, m.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
		return tx.Save(&m).Error
	})
	return slotWriteError(err)
}

// Exists reports whether the technician has an availability row with exactly
// this day, start and end. Overlapping but unequal slots do not count.
func (r *AvailabilityRepository) Exists(ctx context.Context, technicianID uuid.UUID, slot domain.TimeSlotDay, exclude uuid.UUID) (bool, error) {
	return slotExists(ctx, r.db, technicianID, slot, exclude)
}

func slotExists(ctx context.Context, db *gorm.DB, technicianID uuid.UUID, slot domain.TimeSlotDay, exclude uuid.UUID) (bool, error) {
	q := db.WithContext(ctx).
		Model(&availabilityModel{}).
		Where("technician_id = ? AND day = ? AND start_time = ? AND end_time = ?", technicianID, slot.Day, slot.Start, slot.End)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// the unique index is the final guard against a concurrent duplicate
func slotWriteError(err error) error {
	if IsUniqueViolation(err) {
		return ErrSlotTaken
	}
	return mapWriteError(err)
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TechnicianAvailability, error) {
	var m availabilityModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainAvailability(m), nil
}

func (r *AvailabilityRepository) List(ctx context.Context, f AvailabilityFilter, p Page) ([]domain.TechnicianAvailability, error) {
	q := r.db.WithContext(ctx).Model(&availabilityModel{})
	if f.TechnicianID != nil {
		q = q.Where("technician_id = ?", *f.TechnicianID)
	}
	if f.Day != nil {
		q = q.Where("day = ?", *f.Day)
	}
	if f.StartTime != nil {
		q = q.Where("start_time >= ?", *f.StartTime)
	}
	if f.EndTime != nil {
		q = q.Where("end_time <= ?", *f.EndTime)
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}

	var rows []availabilityModel
	if err := p.apply(q.Order("day ASC, start_time ASC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.TechnicianAvailability, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAvailability(m))
	}
	return out, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &availabilityModel{}, id)
}
