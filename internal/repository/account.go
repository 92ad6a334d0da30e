package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountFields are shared by the admin, client and technician tables.
type AccountFields struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Fullname       string    `gorm:"column:fullname;not null"`
	Email          string    `gorm:"column:email;not null;uniqueIndex"`
	Phone          string    `gorm:"column:phone;not null;uniqueIndex"`
	HashedPassword string    `gorm:"column:hashed_password;not null"`
	IsActive       bool      `gorm:"column:is_active;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func toAccountFields(a domain.Account) AccountFields {
	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return AccountFields{
		ID:             id,
		Fullname:       a.Fullname,
		Email:          a.Email,
		Phone:          a.Phone,
		HashedPassword: a.HashedPassword,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}

func (m AccountFields) toDomain() domain.Account {
	return domain.Account{
		ID:             m.ID,
		Fullname:       m.Fullname,
		Email:          m.Email,
		Phone:          m.Phone,
		HashedPassword: m.HashedPassword,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

type LocationFields struct {
	LocationName string  `gorm:"column:location_name;not null"`
	Latitude     float64 `gorm:"column:latitude;not null"`
	Longitude    float64 `gorm:"column:longitude;not null"`
}

func toLocationFields(l domain.Location) LocationFields {
	return LocationFields{LocationName: l.Name, Latitude: l.Latitude, Longitude: l.Longitude}
}

func (m LocationFields) toDomain() domain.Location {
	return domain.Location{Name: m.LocationName, Latitude: m.Latitude, Longitude: m.Longitude}
}

// accountConflict names the field ("email" or "phone") already used by another
// row of table, or returns "" when both are free.
func accountConflict(ctx context.Context, db *gorm.DB, table, email, phone string, exclude uuid.UUID) (string, error) {
	var hits []struct {
		Email string
		Phone string
	}
	q := db.WithContext(ctx).Table(table).Select("email, phone").Where("email = ? OR phone = ?", email, phone)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Limit(2).Scan(&hits).Error; err != nil {
		return "", err
	}
	for _, h := range hits {
		if h.Email == email {
			return "email", nil
		}
	}
	if len(hits) > 0 {
		return "phone", nil
	}
	return "", nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) (bool, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func setActive(ctx context.Context, db *gorm.DB, table string, id uuid.UUID, active bool) (bool, error) {
	res := db.WithContext(ctx).Table(table).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
