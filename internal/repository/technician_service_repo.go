package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TechnicianServiceRepository struct {
	db *gorm.DB
}

func NewTechnicianServiceRepository(db *gorm.DB) *TechnicianServiceRepository {
	return &TechnicianServiceRepository{db: db}
}

type technicianServiceModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TechnicianID    uuid.UUID `gorm:"column:technician_id;type:uuid;not null;uniqueIndex:idx_technician_service_pair"`
	ServiceID       uuid.UUID `gorm:"column:service_id;type:uuid;not null;uniqueIndex:idx_technician_service_pair"`
	ExperienceYears int       `gorm:"column:experience_years;not null"`
	Price           float64   `gorm:"column:price;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (technicianServiceModel) TableName() string { return "technician_service" }

type technicianServiceRow struct {
	ID              uuid.UUID `gorm:"column:id"`
	TechnicianID    uuid.UUID `gorm:"column:technician_id"`
	ServiceID       uuid.UUID `gorm:"column:service_id"`
	ServiceName     string    `gorm:"column:service_name"`
	ExperienceYears int       `gorm:"column:experience_years"`
	Price           float64   `gorm:"column:price"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

const technicianServiceSelect = "ts.id, ts.technician_id, ts.service_id, s.name AS service_name, ts.experience_years, ts.price, ts.created_at"

func toDomainTechnicianService(row technicianServiceRow) *domain.TechnicianService {
	return &domain.TechnicianService{
		ID:              row.ID,
		TechnicianID:    row.TechnicianID,
		ServiceID:       row.ServiceID,
		ServiceName:     row.ServiceName,
		ExperienceYears: row.ExperienceYears,
		Price:           row.Price,
		CreatedAt:       row.CreatedAt,
	}
}

type TechnicianServiceFilter struct {
	TechnicianID *uuid.UUID
	ServiceID    *uuid.UUID
	MinPrice     *float64
	MaxPrice     *float64
}

func (r *TechnicianServiceRepository) Create(ctx context.Context, ts *domain.TechnicianService) error {
	m := technicianServiceModel{
		ID:              uuid.New(),
		TechnicianID:    ts.TechnicianID,
		ServiceID:       ts.ServiceID,
		ExperienceYears: ts.ExperienceYears,
		Price:           ts.Price,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*ts = *created
	return nil
}

func (r *TechnicianServiceRepository) Exists(ctx context.Context, technicianID, serviceID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&technicianServiceModel{}).
		Where("technician_id = ? AND service_id = ?", technicianID, serviceID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *TechnicianServiceRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("technician_service AS ts").
		Select(technicianServiceSelect).
		Joins("JOIN service s ON s.id = ts.service_id")
}

func (r *TechnicianServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TechnicianService, error) {
	var rows []technicianServiceRow
	if err := r.base(ctx).Where("ts.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return toDomainTechnicianService(rows[0]), nil
}

func (r *TechnicianServiceRepository) List(ctx context.Context, f TechnicianServiceFilter, p Page) ([]domain.TechnicianService, error) {
	q := r.base(ctx)
	if f.TechnicianID != nil {
		q = q.Where("ts.technician_id = ?", *f.TechnicianID)
	}
	if f.ServiceID != nil {
		q = q.Where("ts.service_id = ?", *f.ServiceID)
	}
	if f.MinPrice != nil {
		q = q.Where("ts.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("ts.price <= ?", *f.MaxPrice)
	}

	var rows []technicianServiceRow
	if err := p.apply(q.Order("ts.price ASC")).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.TechnicianService, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDomainTechnicianService(row))
	}
	return out, nil
}

func (r *TechnicianServiceRepository) Update(ctx context.Context, ts *domain.TechnicianService) error {
	err := r.db.WithContext(ctx).
		Model(&technicianServiceModel{}).
		Where("id = ?", ts.ID).
		Updates(map[string]any{"experience_years": ts.ExperienceYears, "price": ts.Price}).Error
	return mapWriteError(err)
}

func (r *TechnicianServiceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &technicianServiceModel{}, id)
}
