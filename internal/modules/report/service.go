// Package report aggregates booking, payment and review data per technician
// and across the platform.
package report

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/cache"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	reports     ReportRepository
	technicians TechnicianReader
	cache       *cache.Cache
}

// NewService accepts a nil cache.
func NewService(reports ReportRepository, technicians TechnicianReader, c *cache.Cache) *Service {
	return &Service{reports: reports, technicians: technicians, cache: c}
}

// TechnicianReport runs every sub-aggregate concurrently; each one yields
// zero values when the technician has no matching rows.
func (s *Service) TechnicianReport(ctx context.Context, technicianID uuid.UUID) (*domain.TechnicianReport, error) {
	if _, err := s.technicians.GetByID(ctx, technicianID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}

	key := s.cache.Key("report.technician", technicianID)
	out := &domain.TechnicianReport{}
	if s.cache.GetJSON(ctx, key, out) {
		return out, nil
	}
	out.TechnicianID = technicianID

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.reports.BookingCounts(gctx, technicianID)
		out.ActiveBookings, out.TotalBookings = c.Active, c.Total
		out.RejectedBookings, out.AcceptedBookings = c.Rejected, c.Accepted
		return err
	})
	g.Go(func() error {
		var err error
		out.TotalPayments, out.TotalRevenue, err = s.reports.CompletedPayments(gctx, technicianID)
		return err
	})
	g.Go(func() error {
		d, err := s.reports.Distances(gctx, technicianID)
		out.ShortestDistanceKm, out.LongestDistanceKm, out.TotalDistanceKm = d.ShortestKm, d.LongestKm, d.TotalKm
		return err
	})
	g.Go(func() error {
		var err error
		out.Rating, out.NumReviews, err = s.reports.Reviews(gctx, technicianID)
		return err
	})
	g.Go(func() error {
		var err error
		out.NumRepeatingClients, err = s.reports.RepeatingClients(gctx, technicianID)
		return err
	})
	g.Go(func() error {
		var err error
		out.NumServicesOffered, err = s.reports.ServicesOffered(gctx, technicianID)
		return err
	})
	g.Go(func() error {
		var err error
		out.MostBookedServiceName, out.LeastBookedServiceName, err = s.reports.BookedServiceExtremes(gctx, technicianID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, out)
	return out, nil
}

// PlatformSummary reports the leading technicians and service with user and
// booking totals.
func (s *Service) PlatformSummary(ctx context.Context) (*domain.PlatformSummary, error) {
	key := s.cache.Key("report.platform")
	out := &domain.PlatformSummary{}
	if s.cache.GetJSON(ctx, key, out) {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.MostBookedTechnicianID, err = s.reports.MostBookedTechnician(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.MostEarningTechnicianID, err = s.reports.MostEarningTechnician(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.MostFavoriteTechnicianID, err = s.reports.MostFavoriteTechnician(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.MostBookedServiceName, err = s.reports.MostBookedService(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.UsersByRole, err = s.reports.UsersByRole(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.BookingsByStatus, err = s.reports.BookingsByStatus(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, out)
	return out, nil
}
