package repository

import (
	"context"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	BookingID    uuid.UUID `gorm:"column:booking_id;type:uuid;not null;uniqueIndex"`
	ClientID     uuid.UUID `gorm:"column:client_id;type:uuid;not null;index"`
	TechnicianID uuid.UUID `gorm:"column:technician_id;type:uuid;not null;index"`
	Rating       int       `gorm:"column:rating;not null"`
	Comment      *string   `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (reviewModel) TableName() string { return "review" }

type reviewRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	BookingID    uuid.UUID `gorm:"column:booking_id"`
	ClientID     uuid.UUID `gorm:"column:client_id"`
	TechnicianID uuid.UUID `gorm:"column:technician_id"`
	Rating       int       `gorm:"column:rating"`
	Comment      *string   `gorm:"column:comment"`
	ClientName   string    `gorm:"column:client_name"`
	ServiceName  string    `gorm:"column:service_name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

const reviewSelect = `r.id, r.booking_id, r.client_id, r.technician_id, r.rating, r.comment, r.created_at,
	COALESCE(c.fullname, '') AS client_name, COALESCE(b.service_name, '') AS service_name`

func toDomainReview(row reviewRow) *domain.Review {
	return &domain.Review{
		ID:           row.ID,
		BookingID:    row.BookingID,
		ClientID:     row.ClientID,
		TechnicianID: row.TechnicianID,
		Rating:       row.Rating,
		Comment:      row.Comment,
		ClientName:   row.ClientName,
		ServiceName:  row.ServiceName,
		CreatedAt:    row.CreatedAt,
	}
}

type ReviewFilter struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	MinRating    *int
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		ID:           uuid.New(),
		BookingID:    rv.BookingID,
		ClientID:     rv.ClientID,
		TechnicianID: rv.TechnicianID,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*rv = *created
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&reviewModel{}).Where("booking_id = ?", bookingID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *ReviewRepository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("review AS r").
		Select(reviewSelect).
		Joins("LEFT JOIN client c ON c.id = r.client_id").
		Joins("LEFT JOIN booking b ON b.id = r.booking_id")
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var rows []reviewRow
	if err := r.base(ctx).Where("r.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return toDomainReview(rows[0]), nil
}

func (r *ReviewRepository) List(ctx context.Context, f ReviewFilter, p Page) ([]domain.Review, error) {
	q := r.base(ctx)
	if f.ClientID != nil {
		q = q.Where("r.client_id = ?", *f.ClientID)
	}
	if f.TechnicianID != nil {
		q = q.Where("r.technician_id = ?", *f.TechnicianID)
	}
	if f.MinRating != nil {
		q = q.Where("r.rating >= ?", *f.MinRating)
	}

	var rows []reviewRow
	if err := p.apply(q.Order("r.created_at DESC")).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDomainReview(row))
	}
	return out, nil
}

// Update writes rating and comment; a nil comment clears it.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{"rating": rv.Rating, "comment": rv.Comment}).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &reviewModel{}, id)
}
