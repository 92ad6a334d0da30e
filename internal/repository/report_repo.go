package repository

import (
	"context"
	"math"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository computes technician and platform aggregates. Every method
// is an independent query so one empty aggregate never hides another.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type BookingCounts struct {
	Active   int64
	Total    int64
	Rejected int64
	Accepted int64
}

func (r *ReportRepository) BookingCounts(ctx context.Context, technicianID uuid.UUID) (BookingCounts, error) {
	var out BookingCounts
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS rejected,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS accepted`,
			activeStatuses(), string(domain.BookingRejected), string(domain.BookingAccepted)).
		Where("technician_id = ?", technicianID).
		Scan(&out).Error
	return out, err
}

func activeStatuses() []string {
	return []string{string(domain.BookingRequested), string(domain.BookingAccepted), string(domain.BookingInProgress)}
}

// CompletedPayments returns the count and sum of completed payments.
func (r *ReportRepository) CompletedPayments(ctx context.Context, technicianID uuid.UUID) (int64, float64, error) {
	var out struct {
		Count   int64
		Revenue float64
	}
	err := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Select("COUNT(*) AS count, CAST(COALESCE(SUM(amount), 0) AS DOUBLE PRECISION) AS revenue").
		Where("technician_id = ? AND status = ?", technicianID, string(domain.PaymentCompleted)).
		Scan(&out).Error
	return out.Count, out.Revenue, err
}

type DistanceStats struct {
	ShortestKm float64
	LongestKm  float64
	TotalKm    float64
}

// Distances measures technician location to booking location over completed
// bookings. PostgreSQL uses ST_Distance; other dialects use great-circle distance.
func (r *ReportRepository) Distances(ctx context.Context, technicianID uuid.UUID) (DistanceStats, error) {
	if isPostgres(r.db) {
		var out DistanceStats
		err := r.db.WithContext(ctx).Raw(`SELECT
	COALESCE(MIN(d.m), 0) / 1000 AS shortest_km,
	COALESCE(MAX(d.m), 0) / 1000 AS longest_km,
	COALESCE(SUM(d.m), 0) / 1000 AS total_km
FROM (
	SELECT ST_Distance(ST_MakePoint(t.longitude, t.latitude)::geography,
		ST_MakePoint(b.longitude, b.latitude)::geography) AS m
	FROM booking b JOIN technician t ON t.id = b.technician_id
	WHERE b.technician_id = ? AND b.status = ?
) d`, technicianID, string(domain.BookingCompleted)).Scan(&out).Error
		return out, err
	}

	var rows []struct {
		TechLat, TechLon float64
		Lat, Lon         float64
	}
	err := r.db.WithContext(ctx).
		Table("booking AS b").
		Select("t.latitude AS tech_lat, t.longitude AS tech_lon, b.latitude AS lat, b.longitude AS lon").
		Joins("JOIN technician t ON t.id = b.technician_id").
		Where("b.technician_id = ? AND b.status = ?", technicianID, string(domain.BookingCompleted)).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return DistanceStats{}, err
	}
	out := DistanceStats{ShortestKm: math.MaxFloat64}
	for _, row := range rows {
		from := domain.Location{Latitude: row.TechLat, Longitude: row.TechLon}
		d := from.DistanceKm(domain.Location{Latitude: row.Lat, Longitude: row.Lon})
		out.ShortestKm = math.Min(out.ShortestKm, d)
		out.LongestKm = math.Max(out.LongestKm, d)
		out.TotalKm += d
	}
	return out, nil
}

// Reviews returns the average rating and the number of reviews.
func (r *ReportRepository) Reviews(ctx context.Context, technicianID uuid.UUID) (float64, int64, error) {
	var out struct {
		Rating float64
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("CAST(COALESCE(AVG(rating), 0) AS DOUBLE PRECISION) AS rating, COUNT(*) AS count").
		Where("technician_id = ?", technicianID).
		Scan(&out).Error
	return out.Rating, out.Count, err
}

// RepeatingClients counts clients with more than one booking.
func (r *ReportRepository) RepeatingClients(ctx context.Context, technicianID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM (
	SELECT client_id FROM booking WHERE technician_id = ? GROUP BY client_id HAVING COUNT(*) > 1
) c`, technicianID).Scan(&n).Error
	return n, err
}

func (r *ReportRepository) ServicesOffered(ctx context.Context, technicianID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&technicianServiceModel{}).
		Where("technician_id = ?", technicianID).
		Distinct("service_id").
		Count(&n).Error
	return n, err
}

// BookedServiceExtremes returns the most and least booked service names,
// empty when the technician has no bookings. Ties break by name.
func (r *ReportRepository) BookedServiceExtremes(ctx context.Context, technicianID uuid.UUID) (string, string, error) {
	var rows []struct {
		ServiceName string
		Cnt         int64
	}
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("service_name, COUNT(*) AS cnt").
		Where("technician_id = ?", technicianID).
		Group("service_name").
		Order("cnt DESC, service_name ASC").
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return "", "", err
	}
	least := rows[len(rows)-1]
	for _, row := range rows {
		if row.Cnt == least.Cnt {
			least = row
			break
		}
	}
	return rows[0].ServiceName, least.ServiceName, nil
}

func (r *ReportRepository) MostBookedTechnician(ctx context.Context) (*uuid.UUID, error) {
	return topTechnician(r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("technician_id").
		Group("technician_id").
		Order("COUNT(*) DESC"))
}

func (r *ReportRepository) MostEarningTechnician(ctx context.Context) (*uuid.UUID, error) {
	return topTechnician(r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Select("technician_id").
		Where("status = ?", string(domain.PaymentCompleted)).
		Group("technician_id").
		Order("SUM(amount) DESC"))
}

func (r *ReportRepository) MostFavoriteTechnician(ctx context.Context) (*uuid.UUID, error) {
	return topTechnician(r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Select("technician_id").
		Group("technician_id").
		Order("COUNT(*) DESC"))
}

func topTechnician(q *gorm.DB) (*uuid.UUID, error) {
	var ids []uuid.UUID
	if err := q.Limit(1).Pluck("technician_id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return &ids[0], nil
}

func (r *ReportRepository) MostBookedService(ctx context.Context) (string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Group("service_name").
		Order("COUNT(*) DESC, service_name ASC").
		Limit(1).
		Pluck("service_name", &names).Error
	if err != nil || len(names) == 0 {
		return "", err
	}
	return names[0], nil
}

func (r *ReportRepository) UsersByRole(ctx context.Context) (map[domain.UserRole]int64, error) {
	out := make(map[domain.UserRole]int64, 3)
	tables := []struct {
		role  domain.UserRole
		model any
	}{
		{domain.RoleAdmin, &adminModel{}},
		{domain.RoleClient, &clientModel{}},
		{domain.RoleTechnician, &technicianModel{}},
	}
	for _, tbl := range tables {
		var n int64
		if err := r.db.WithContext(ctx).Model(tbl.model).Count(&n).Error; err != nil {
			return nil, err
		}
		out[tbl.role] = n
	}
	return out, nil
}

func (r *ReportRepository) BookingsByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[domain.BookingStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.BookingStatus(row.Status)] = row.Cnt
	}
	return out, nil
}
