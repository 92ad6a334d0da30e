package repository

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	AccountFields
	LocationFields
}

func (clientModel) TableName() string { return "client" }

func toClientModel(c *domain.Client) clientModel {
	return clientModel{AccountFields: toAccountFields(c.Account), LocationFields: toLocationFields(c.Location)}
}

func toDomainClient(m clientModel) *domain.Client {
	return &domain.Client{Account: m.AccountFields.toDomain(), Location: m.LocationFields.toDomain()}
}

type ClientFilter struct {
	Active *bool
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var m clientModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var m clientModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context, f ClientFilter, p Page) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).Model(&clientModel{})
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}

	var rows []clientModel
	if err := p.apply(q.Order("created_at ASC")).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	return mapWriteError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &clientModel{}, id)
}

func (r *ClientRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	return setActive(ctx, r.db, clientModel{}.TableName(), id, active)
}

func (r *ClientRepository) Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error) {
	return accountConflict(ctx, r.db, clientModel{}.TableName(), email, phone, exclude)
}
