package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteRepository stores the technicians a client saved.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

type favoriteModel struct {
	ClientID     uuid.UUID `gorm:"column:client_id;type:uuid;primaryKey"`
	TechnicianID uuid.UUID `gorm:"column:technician_id;type:uuid;primaryKey"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (favoriteModel) TableName() string { return "favorite_technician" }

// Add returns false when the technician is already a favorite.
func (r *FavoriteRepository) Add(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	exists, err := r.Exists(ctx, clientID, technicianID)
	if err != nil || exists {
		return false, err
	}
	m := favoriteModel{ClientID: clientID, TechnicianID: technicianID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("client_id = ? AND technician_id = ?", clientID, technicianID).
		Delete(&favoriteModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Where("client_id = ? AND technician_id = ?", clientID, technicianID).
		Count(&cnt).Error
	return cnt > 0, err
}

// TechnicianIDs lists the client's favorites, most recent first.
func (r *FavoriteRepository) TechnicianIDs(ctx context.Context, clientID uuid.UUID, p Page) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	q := r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Where("client_id = ?", clientID).
		Order("created_at DESC")
	if err := p.apply(q).Pluck("technician_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
