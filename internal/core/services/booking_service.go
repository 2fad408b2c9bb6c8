package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

type CreateBookingRequest struct {
	MentorID           uuid.UUID `json:"mentorId" binding:"required"`
	MentorExpertiseID  uuid.UUID `json:"mentorExpertiseId" binding:"required"`
	AvailabilitySlotID uuid.UUID `json:"availabilitySlotId" binding:"required"`
	StartDatetime      time.Time `json:"startDatetime" binding:"required"`
	EndDatetime        time.Time `json:"endDatetime" binding:"required"`
	TotalPrice         float64   `json:"totalPrice" binding:"min=0"`
	MenteeNotes        *string   `json:"menteeNotes" binding:"omitempty,max=1000"`
}

type BookingService struct {
	repos ports.Repositories
	uow   ports.UnitOfWork
	cache *redis.Client
	log   logrus.FieldLogger
	opts  options
}

func NewBookingService(repos ports.Repositories, uow ports.UnitOfWork, cache *redis.Client, log logrus.FieldLogger, opts ...Option) *BookingService {
	return &BookingService{
		repos: repos,
		uow:   uow,
		cache: cache,
		log:   log,
		opts:  buildOptions(opts),
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, p domain.Principal, req CreateBookingRequest) (*domain.Booking, error) {
	if p.Role != domain.RoleMentee {
		return nil, domain.ErrNotAuthorized
	}

	if req.MentorID == uuid.Nil || req.MentorExpertiseID == uuid.Nil || req.AvailabilitySlotID == uuid.Nil {
		return nil, domain.ErrValidation
	}
	if req.StartDatetime.IsZero() || req.EndDatetime.IsZero() || req.TotalPrice < 0 {
		return nil, domain.ErrValidation
	}
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, domain.ErrInvalidTime
	}

	menteeID, err := s.repos.Mentors.MenteeIDForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	booking := &domain.Booking{
		ID:                 uuid.New(),
		MenteeID:           menteeID,
		MentorID:           req.MentorID,
		MentorExpertiseID:  req.MentorExpertiseID,
		AvailabilitySlotID: req.AvailabilitySlotID,
		StartDatetime:      req.StartDatetime,
		EndDatetime:        req.EndDatetime,
		TotalPrice:         req.TotalPrice,
		MenteeNotes:        req.MenteeNotes,
		Status:             domain.BookingPending,
		PaymentStatus:      domain.PaymentPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		slot, err := repos.Slots.GetForUpdate(ctx, req.AvailabilitySlotID)
		if err != nil {
			if errors.Is(err, domain.ErrSlotNotFound) {
				return domain.ErrSlotUnavailable
			}
			return err
		}

		if !slot.IsAvailable() || slot.MentorID != req.MentorID {
			return domain.ErrSlotUnavailable
		}

		taken, err := repos.Bookings.HasActiveForSlot(ctx, slot.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDoubleBooking
		}

		expertise, err := repos.Expertise.GetByID(ctx, req.MentorExpertiseID)
		if err != nil {
			if errors.Is(err, domain.ErrExpertiseNotFound) {
				return domain.ErrInvalidExpertise
			}
			return err
		}
		if !expertise.BelongsTo(req.MentorID) {
			return domain.ErrInvalidExpertise
		}

		return repos.Bookings.CreateBooking(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"slot_id":    booking.AvailabilitySlotID,
		"mentee_id":  booking.MenteeID,
	}).Info("booking created")

	return booking, nil
}

// ApproveBooking confirms a pending booking, locks its slot and cancels any
// other pending booking still pointing at the same slot.
func (s *BookingService) ApproveBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) (*domain.Booking, error) {
	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		b, err := repos.Bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !party.IsMentorOf(b) {
			return domain.ErrNotAuthorized
		}
		if b.Status != domain.BookingPending {
			return domain.ErrInvalidStatus
		}

		if err := repos.Slots.LockSlot(ctx, b.AvailabilitySlotID); err != nil {
			return err
		}

		cancelled, err := repos.Bookings.CancelPendingForSlot(ctx, b.AvailabilitySlotID, b.ID)
		if err != nil {
			return fmt.Errorf("failed to cancel sibling bookings: %w", err)
		}
		for _, id := range cancelled {
			if _, err := repos.Reschedules.RejectPendingForBooking(ctx, id, s.opts.now()); err != nil {
				return err
			}
		}
		if len(cancelled) > 0 {
			s.log.WithFields(logrus.Fields{
				"booking_id": b.ID,
				"slot_id":    b.AvailabilitySlotID,
				"cancelled":  len(cancelled),
			}).Warn("cancelled sibling pending bookings on approved slot")
		}

		if err := repos.Bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed); err != nil {
			return err
		}

		b.Status = domain.BookingConfirmed
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateSlotCache(ctx, s.cache, s.log, booking.MentorID)
	s.log.WithField("booking_id", booking.ID).Info("booking approved")

	return booking, nil
}

func (s *BookingService) RejectBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) (*domain.Booking, error) {
	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}

	booking, err := s.terminate(ctx, bookingID, func(b *domain.Booking) error {
		if !party.IsMentorOf(b) {
			return domain.ErrNotAuthorized
		}
		if b.Status != domain.BookingPending {
			return domain.ErrInvalidStatus
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("booking_id", booking.ID).Info("booking rejected")
	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) (*domain.Booking, error) {
	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}

	booking, err := s.terminate(ctx, bookingID, func(b *domain.Booking) error {
		if !party.IsPartyOf(b) {
			return domain.ErrNotAuthorized
		}
		if !b.CanTransition(domain.BookingCancelled) {
			return domain.ErrInvalidStatus
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    p.UserID,
	}).Info("booking cancelled")
	return booking, nil
}

// terminate cancels the booking once check passes, drops its pending
// reschedule requests and releases the slot when no active booking holds it.
func (s *BookingService) terminate(ctx context.Context, bookingID uuid.UUID, check func(*domain.Booking) error) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		b, err := repos.Bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if err := check(b); err != nil {
			return err
		}

		if err := repos.Bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
			return err
		}

		if _, err := repos.Reschedules.RejectPendingForBooking(ctx, b.ID, s.opts.now()); err != nil {
			return err
		}

		held, err := repos.Bookings.HasActiveForSlot(ctx, b.AvailabilitySlotID)
		if err != nil {
			return err
		}
		if !held {
			if err := repos.Slots.UnlockSlot(ctx, b.AvailabilitySlotID); err != nil {
				return err
			}
		}

		b.Status = domain.BookingCancelled
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateSlotCache(ctx, s.cache, s.log, booking.MentorID)
	return booking, nil
}

// CompleteBooking is only ever triggered by the mentor; nothing completes
// sessions in the background.
func (s *BookingService) CompleteBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) (*domain.Booking, error) {
	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		b, err := repos.Bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !party.IsMentorOf(b) {
			return domain.ErrNotAuthorized
		}
		if b.Status != domain.BookingConfirmed {
			return domain.ErrInvalidStatus
		}
		if !b.HasEnded(s.opts.now()) {
			return domain.ErrSessionNotEnded
		}

		if err := repos.Bookings.UpdateStatus(ctx, b.ID, domain.BookingCompleted); err != nil {
			return err
		}

		b.Status = domain.BookingCompleted
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("booking_id", booking.ID).Info("booking completed")
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, p domain.Principal, status string) ([]domain.Booking, error) {
	filter, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}

	switch p.Role {
	case domain.RoleMentor:
		mentorID, err := s.repos.Mentors.MentorIDForUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		return s.repos.Bookings.ListByMentor(ctx, mentorID, filter)
	case domain.RoleMentee:
		menteeID, err := s.repos.Mentors.MenteeIDForUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		return s.repos.Bookings.ListByMentee(ctx, menteeID, filter)
	}

	return nil, domain.ErrInvalidRole
}

func (s *BookingService) GetBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) (*domain.Booking, error) {
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

	return booking, nil
}
