package repository

import (
	"context"
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

type technicianModel struct {
	AccountFields
	LocationFields
	IsAvailable bool `gorm:"column:is_available;not null"`
}

func (technicianModel) TableName() string { return "technician" }

// technicianRow is a technician with its read-time aggregates.
type technicianRow struct {
	AccountFields
	LocationFields
	IsAvailable bool    `gorm:"column:is_available"`
	Rating      float64 `gorm:"column:rating"`
	IsVerified  bool    `gorm:"column:is_verified"`
	DistanceM   float64 `gorm:"column:distance_meters"`
	Score       float64 `gorm:"column:score"`
}

const technicianSelect = `t.id, t.fullname, t.email, t.phone, t.hashed_password, t.is_active, t.created_at,
	t.location_name, t.latitude, t.longitude, t.is_available,
	CAST(COALESCE((SELECT AVG(r.rating) FROM review r WHERE r.technician_id = t.id), 0) AS DOUBLE PRECISION) AS rating,
	EXISTS (SELECT 1 FROM verified_technician v WHERE v.technician_id = t.id) AS is_verified`

func toTechnicianModel(t *domain.Technician) technicianModel {
	return technicianModel{
		AccountFields:  toAccountFields(t.Account),
		LocationFields: toLocationFields(t.Location),
		IsAvailable:    t.IsAvailable,
	}
}

func toDomainTechnician(row technicianRow) *domain.Technician {
	return &domain.Technician{
		Account:     row.AccountFields.toDomain(),
		Location:    row.LocationFields.toDomain(),
		Rating:      row.Rating,
		Services:    []string{},
		IsAvailable: row.IsAvailable,
		IsVerified:  row.IsVerified,
	}
}

type TechnicianFilter struct {
	Active      *bool
	IsAvailable *bool
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	m := toTechnicianModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapWriteError(err)
	}
	created, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*t = *created
	return nil
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	return r.getOne(ctx, "t.id = ?", id)
}

func (r *TechnicianRepository) GetByEmail(ctx context.Context, email string) (*domain.Technician, error) {
	return r.getOne(ctx, "t.email = ?", email)
}

func (r *TechnicianRepository) getOne(ctx context.Context, where string, arg any) (*domain.Technician, error) {
	var rows []technicianRow
	err := r.db.WithContext(ctx).
		Table("technician AS t").
		Select(technicianSelect).
		Where(where, arg).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	techs, err := r.hydrate(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &techs[0], nil
}

func (r *TechnicianRepository) List(ctx context.Context, f TechnicianFilter, p Page) ([]domain.Technician, error) {
	q := r.db.WithContext(ctx).Table("technician AS t").Select(technicianSelect)
	if f.Active != nil {
		q = q.Where("t.is_active = ?", *f.Active)
	}
	if f.IsAvailable != nil {
		q = q.Where("t.is_available = ?", *f.IsAvailable)
	}

	var rows []technicianRow
	if err := p.apply(q.Order("t.created_at ASC")).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(ctx, rows)
}

// ListByIDs keeps the order of ids.
func (r *TechnicianRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Technician, error) {
	if len(ids) == 0 {
		return []domain.Technician{}, nil
	}
	var rows []technicianRow
	err := r.db.WithContext(ctx).Table("technician AS t").Select(technicianSelect).Where("t.id IN ?", ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	techs, err := r.hydrate(ctx, rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Technician, len(techs))
	for _, t := range techs {
		byID[t.ID] = t
	}
	out := make([]domain.Technician, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// hydrate maps rows and attaches offered service names.
func (r *TechnicianRepository) hydrate(ctx context.Context, rows []technicianRow) ([]domain.Technician, error) {
	out := make([]domain.Technician, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	names, err := serviceNamesByTechnician(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		t := toDomainTechnician(row)
		if s, ok := names[row.ID]; ok {
			t.Services = s
		}
		out = append(out, *t)
	}
	return out, nil
}

func serviceNamesByTechnician(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	var pairs []struct {
		TechnicianID uuid.UUID
		Name         string
	}
	err := db.WithContext(ctx).
		Table("technician_service AS ts").
		Select("ts.technician_id, s.name").
		Joins("JOIN service s ON s.id = ts.service_id").
		Where("ts.technician_id IN ?", ids).
		Order("s.name ASC").
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]string, len(ids))
	for _, p := range pairs {
		out[p.TechnicianID] = append(out[p.TechnicianID], p.Name)
	}
	return out, nil
}

// OffersService reports whether the technician offers a service with that name.
func (r *TechnicianRepository) OffersService(ctx context.Context, technicianID uuid.UUID, serviceName string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Table("technician_service AS ts").
		Joins("JOIN service s ON s.id = ts.service_id").
		Where("ts.technician_id = ? AND LOWER(s.name) = ?", technicianID, strings.ToLower(strings.TrimSpace(serviceName))).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *TechnicianRepository) Update(ctx context.Context, t *domain.Technician) error {
	m := toTechnicianModel(t)
	return mapWriteError(r.db.WithContext(ctx).Save(&m).Error)
}

func (r *TechnicianRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID(ctx, r.db, &technicianModel{}, id)
}

func (r *TechnicianRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	return setActive(ctx, r.db, technicianModel{}.TableName(), id, active)
}

func (r *TechnicianRepository) Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error) {
	return accountConflict(ctx, r.db, technicianModel{}.TableName(), email, phone, exclude)
}
