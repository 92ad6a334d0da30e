package repository

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

type adminModel struct {
	AccountFields
	Role string `gorm:"column:role;not null"`
}

func (adminModel) TableName() string { return "admin" }

func toAdminModel(a *domain.Admin) adminModel {
	return adminModel{AccountFields: toAccountFields(a.Account), Role: string(a.Role)}
}

func toDomainAdmin(m adminModel) *domain.Admin {
	return &domain.Admin{Account: m.AccountFields.toDomain(), Role: domain.AdminRole(m.Role)}
}

type AdminFilter struct {
	Active *bool
	Role   *domain.AdminRole
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	m := toAdminModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	*a = *toDomainAdmin(m)
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	var m adminModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainAdmin(m), nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var m adminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainAdmin(m), nil
}

func (r *AdminRepository) List(ctx context.Context, f AdminFilter, p Page) ([]domain.Admin, error) {
	q := r.db.WithContext(ctx).Model(&adminModel{})
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Role != nil {
		q = q.Where("role = ?", string(*f.Role))
	}

	var rows []adminModel
	if err := p.apply(q.Order("created_at ASC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Admin, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAdmin(m))
	}
	return out, nil
}

func (r *AdminRepository) Update(ctx context.Context, a *domain.Admin) error {
	m := toAdminModel(a)
	return mapWriteError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &adminModel{}, id)
}

func (r *AdminRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	return setActive(ctx, r.db, adminModel{}.TableName(), id, active)
}

func (r *AdminRepository) Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error) {
	return accountConflict(ctx, r.db, adminModel{}.TableName(), email, phone, exclude)
}
