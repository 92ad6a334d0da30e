package repository

import (
	"context"
	"strings"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository stores the service catalog.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	Description string    `gorm:"column:description;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (serviceModel) TableName() string { return "service" }

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{ID: m.ID, Name: m.Name, Description: m.Description, CreatedAt: m.CreatedAt}
}

func toServiceModel(s *domain.Service) serviceModel {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return serviceModel{ID: id, Name: s.Name, Description: s.Description, CreatedAt: s.CreatedAt}
}

type ServiceFilter struct {
	Name string
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	*s = *toDomainService(m)
	return nil
}

// NameExists compares names case-insensitively.
func (r *ServiceRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&serviceModel{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	var m serviceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	var m serviceModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) List(ctx context.Context, f ServiceFilter, p Page) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Model(&serviceModel{})
	if name := strings.TrimSpace(f.Name); name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var rows []serviceModel
	if err := p.apply(q.Order("name ASC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	return mapWriteError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &serviceModel{}, id)
}
