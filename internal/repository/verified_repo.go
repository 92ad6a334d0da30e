package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerifiedRepository struct {
	db *gorm.DB
}

func NewVerifiedRepository(db *gorm.DB) *VerifiedRepository {
	return &VerifiedRepository{db: db}
}

type verifiedModel struct {
	TechnicianID uuid.UUID `gorm:"column:technician_id;type:uuid;primaryKey"`
	AdminID      uuid.UUID `gorm:"column:admin_id;type:uuid;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (verifiedModel) TableName() string { return "verified_technician" }

// Verify returns false when the technician was already verified.
func (r *VerifiedRepository) Verify(ctx context.Context, technicianID, adminID uuid.UUID) (bool, error) {
	ok, err := r.IsVerified(ctx, technicianID)
	if err != nil || ok {
		return false, err
	}
	m := verifiedModel{TechnicianID: technicianID, AdminID: adminID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *VerifiedRepository) Unverify(ctx context.Context, technicianID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("technician_id = ?", technicianID).Delete(&verifiedModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *VerifiedRepository) IsVerified(ctx context.Context, technicianID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&verifiedModel{}).Where("technician_id = ?", technicianID).Count(&cnt).Error
	return cnt > 0, err
}
