// Package review lets clients rate completed bookings.
package review

import (
	"context"
	"errors"
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingReader
}

func NewService(reviews ReviewRepository, bookings BookingReader) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// Create accepts one review per completed booking, written by the booking's
// client about the booking's technician.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.ClientID != req.ClientID || b.TechnicianID != req.TechnicianID {
		return nil, ErrBookingMismatch
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotDone
	}

	exists, err := s.reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		TechnicianID: b.TechnicianID,
		Rating:       req.Rating,
		Comment:      trimComment(req.Comment),
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Review, error) {
	if q.MinRating != nil && (*q.MinRating < 1 || *q.MinRating > 5) {
		return nil, ErrInvalidRatingFilt
	}
	f := repository.ReviewFilter{ClientID: q.ClientID, TechnicianID: q.TechnicianID, MinRating: q.MinRating}
	return s.reviews.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if rating, ok, err := optional.NonNull(req.Rating, "rating"); err != nil {
		return nil, err
	} else if ok {
		if rating < 1 || rating > 5 {
			return nil, ErrInvalidRating
		}
		rv.Rating = rating
	}
	if req.Comment.IsSet() {
		rv.Comment = trimComment(req.Comment.Ptr())
	}

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.reviews.Delete(ctx, id)
}

// trimComment stores blank comments as null.
func trimComment(c *string) *string {
	if c == nil {
		return nil
	}
	v := strings.TrimSpace(*c)
	if v == "" {
		return nil
	}
	return &v
}
