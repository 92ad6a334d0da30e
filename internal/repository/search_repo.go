package repository

import (
	"context"
	"strings"
	"unicode"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"gorm.io/gorm"
)

// SearchRepository runs the PostGIS proximity and full-text technician queries.
// Both need PostgreSQL with the postgis extension.
type SearchRepository struct {
	db    *gorm.DB
	techs *TechnicianRepository
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db, techs: NewTechnicianRepository(db)}
}

const (
	technicianGeo = "ST_MakePoint(t.longitude, t.latitude)::geography"
	originGeo     = "ST_MakePoint(@lon, @lat)::geography"
)

// Nearby lists active technicians within radiusM meters of origin, closest
// first. A non-empty services list keeps technicians offering any of them.
func (r *SearchRepository) Nearby(ctx context.Context, origin domain.Location, radiusM float64, services []string, p Page) ([]domain.NearbyTechnician, error) {
	p = p.Normalize()
	args := map[string]any{
		"lon":    origin.Longitude,
		"lat":    origin.Latitude,
		"radius": radiusM,
		"skip":   p.Skip,
		"limit":  p.Limit,
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + technicianSelect + ",\n")
	sb.WriteString("\tST_Distance(" + technicianGeo + ", " + originGeo + ") AS distance_meters\n")
	sb.WriteString("FROM technician t\n")
	sb.WriteString("WHERE t.is_active AND ST_DWithin(" + technicianGeo + ", " + originGeo + ", @radius)\n")
	if names := lowerAll(services); len(names) > 0 {
		args["services"] = names
		sb.WriteString(`AND EXISTS (
	SELECT 1 FROM technician_service ts JOIN service s ON s.id = ts.service_id
	WHERE ts.technician_id = t.id AND LOWER(s.name) IN @services)
`)
	}
	sb.WriteString("ORDER BY distance_meters ASC\nOFFSET @skip LIMIT @limit")

	var rows []technicianRow
	if err := r.db.WithContext(ctx).Raw(sb.String(), args).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.nearby(ctx, rows)
}

// serviceScoreSQL scores every technician_service row against the query and
// keeps the best row per technician.
const serviceScoreSQL = `SELECT ts.technician_id, MAX(GREATEST(
	CASE WHEN POSITION(@lowered IN LOWER(s.name)) > 0 THEN 1.0 ELSE 0 END,
	CASE WHEN POSITION(@lowered IN LOWER(COALESCE(s.description, ''))) > 0 THEN 0.8 ELSE 0 END,
	CASE WHEN s.search_vector @@ plainto_tsquery('english', @query)
		THEN ts_rank(s.search_vector, plainto_tsquery('english', @query)) ELSE 0 END,
	CASE WHEN s.search_vector @@ websearch_to_tsquery('english', @query)
		THEN ts_rank(s.search_vector, websearch_to_tsquery('english', @query)) ELSE 0 END,
	CASE WHEN @terms <> '' AND s.search_vector @@ to_tsquery('english', @terms)
		THEN ts_rank(s.search_vector, to_tsquery('english', @terms)) ELSE 0 END
)) AS score
FROM technician_service ts JOIN service s ON s.id = ts.service_id
GROUP BY ts.technician_id`

// ByDescription lists active technicians within radiusM meters whose offered
// services match query, best score first and closest first on ties.
func (r *SearchRepository) ByDescription(ctx context.Context, origin domain.Location, query string, radiusM float64, p Page) ([]domain.NearbyTechnician, error) {
	p = p.Normalize()
	args := map[string]any{
		"lon":     origin.Longitude,
		"lat":     origin.Latitude,
		"radius":  radiusM,
		"query":   query,
		"lowered": strings.ToLower(query),
		"terms":   orTerms(query),
		"skip":    p.Skip,
		"limit":   p.Limit,
	}
	sql := "SELECT " + technicianSelect + `,
	ST_Distance(` + technicianGeo + ", " + originGeo + `) AS distance_meters,
	CAST(m.score AS DOUBLE PRECISION) AS score
FROM technician t
JOIN (` + serviceScoreSQL + `) m ON m.technician_id = t.id
WHERE t.is_active AND m.score > 0 AND ST_DWithin(` + technicianGeo + ", " + originGeo + `, @radius)
ORDER BY score DESC, distance_meters ASC
OFFSET @skip LIMIT @limit`

	var rows []technicianRow
	if err := r.db.WithContext(ctx).Raw(sql, args).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return r.nearby(ctx, rows)
}

func (r *SearchRepository) nearby(ctx context.Context, rows []technicianRow) ([]domain.NearbyTechnician, error) {
	techs, err := r.techs.hydrate(ctx, rows)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NearbyTechnician, 0, len(techs))
	for i, t := range techs {
		out = append(out, domain.NearbyTechnician{
			Technician: t,
			DistanceKm: rows[i].DistanceM / 1000,
			Score:      rows[i].Score,
		})
	}
	return out, nil
}

// orTerms turns free text into a to_tsquery OR expression ("leak | pipe").
// Only letters and digits survive so the result is always valid tsquery syntax.
func orTerms(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]struct{}, len(fields))
	terms := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return strings.Join(terms, " | ")
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
