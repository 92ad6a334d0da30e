// Package search finds technicians around a client, by distance or by how
// well their services match a problem description.
package search

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/cache"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

const DefaultRadiusKm = 10

type Service struct {
	search  SearchRepository
	clients ClientReader
	cache   *cache.Cache
}

// NewService accepts a nil cache.
func NewService(search SearchRepository, clients ClientReader, c *cache.Cache) *Service {
	return &Service{search: search, clients: clients, cache: c}
}

// SearchNearby lists active technicians within radiusKm of the client,
// closest first. The sign of radiusKm is ignored.
func (s *Service) SearchNearby(ctx context.Context, clientID uuid.UUID, radiusKm float64, services []string, skip, limit int) ([]domain.NearbyTechnician, error) {
	origin, err := s.origin(ctx, clientID)
	if err != nil {
		return nil, err
	}
	radiusM := math.Abs(radiusKm) * 1000
	services = normalizeNames(services)

	key := s.cache.Key("search.nearby", clientID, origin.Latitude, origin.Longitude, radiusM, strings.Join(services, ","), skip, limit)
	var out []domain.NearbyTechnician
	if s.cache.GetJSON(ctx, key, &out) {
		return out, nil
	}

	out, err = s.search.Nearby(ctx, origin, radiusM, services, repository.Page{Skip: skip, Limit: limit})
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, out)
	return out, nil
}

// SearchByDescription ranks technicians within radiusKm by how well one of
// their services matches description.
func (s *Service) SearchByDescription(ctx context.Context, clientID uuid.UUID, description string, radiusKm float64, skip, limit int) ([]domain.NearbyTechnician, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	origin, err := s.origin(ctx, clientID)
	if err != nil {
		return nil, err
	}
	radiusM := math.Abs(radiusKm) * 1000

	key := s.cache.Key("search.description", clientID, origin.Latitude, origin.Longitude, radiusM, strings.ToLower(description), skip, limit)
	var out []domain.NearbyTechnician
	if s.cache.GetJSON(ctx, key, &out) {
		return out, nil
	}

	out, err = s.search.ByDescription(ctx, origin, description, radiusM, repository.Page{Skip: skip, Limit: limit})
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, out)
	return out, nil
}

// SearchExternal would query third-party directories around loc.
func (s *Service) SearchExternal(ctx context.Context, loc domain.Location, radiusKm float64) ([]domain.NearbyTechnician, error) {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return nil, ErrInvalidSearchArea
	}
	return nil, ErrExternalSearch
}

func (s *Service) origin(ctx context.Context, clientID uuid.UUID) (domain.Location, error) {
	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.Location{}, ErrClientNotFound
		}
		return domain.Location{}, err
	}
	return c.Location, nil
}

// normalizeNames lowercases, dedupes and sorts so equivalent filters share a
// cache entry.
func normalizeNames(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
