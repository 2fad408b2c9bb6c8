package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string   `json:"comment" binding:"omitempty,max=1000"`
}

type ReviewService struct {
	repos ports.Repositories
	uow   ports.UnitOfWork
	log   logrus.FieldLogger
	opts  options
}

func NewReviewService(repos ports.Repositories, uow ports.UnitOfWork, log logrus.FieldLogger, opts ...Option) *ReviewService {
	return &ReviewService{
		repos: repos,
		uow:   uow,
		log:   log,
		opts:  buildOptions(opts),
	}
}

// CreateReview stores the mentee's single review of a completed booking and
// recomputes the mentor's average in the same transaction.
func (s *ReviewService) CreateReview(ctx context.Context, p domain.Principal, req CreateReviewRequest) (*domain.Review, error) {
	if p.Role != domain.RoleMentee {
		return nil, domain.ErrNotAuthorized
	}
	if req.BookingID == uuid.Nil {
		return nil, domain.ErrValidation
	}
	if err := domain.ValidateRating(req.Rating); err != nil {
		return nil, err
	}

	menteeID, err := s.repos.Mentors.MenteeIDForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repos.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.MenteeID != menteeID {
		return nil, domain.ErrNotAuthorized
	}
	if booking.Status != domain.BookingCompleted {
		return nil, domain.ErrInvalidBookingStatus
	}

	exists, err := s.repos.Reviews.ExistsForBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrReviewExists
	}

	review := &domain.Review{
		ID:        uuid.New(),
		BookingID: booking.ID,
		MenteeID:  menteeID,
		MentorID:  booking.MentorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: s.opts.now(),
	}

	var stats domain.RatingStats
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		// serializes concurrent reviews of one mentor so the aggregate is exact
		if err := repos.Mentors.LockForUpdate(ctx, booking.MentorID); err != nil {
			return err
		}

		if err := repos.Reviews.Create(ctx, review); err != nil {
			return err
		}

		st, err := repos.Reviews.StatsForMentor(ctx, booking.MentorID)
		if err != nil {
			return err
		}
		stats = st

		return repos.Mentors.UpdateRating(ctx, booking.MentorID, stats.Average(), stats.Count)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"review_id":      review.ID,
		"mentor_id":      booking.MentorID,
		"average_rating": stats.Average(),
		"total_reviews":  stats.Count,
	}).Info("review created")

	return review, nil
}

func (s *ReviewService) GetForBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) (*domain.Review, error) {
	booking, err := s.repos.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}
	if !party.IsPartyOf(booking) {
		return nil, domain.ErrNotAuthorized
	}

	return s.repos.Reviews.GetByBooking(ctx, bookingID)
}

func (s *ReviewService) ListForMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Review, error) {
	if _, err := s.repos.Mentors.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.repos.Reviews.ListByMentor(ctx, mentorID)
}
