package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

type ProposeRescheduleRequest struct {
	BookingID     uuid.UUID `json:"bookingId" binding:"required"`
	ProposedStart time.Time `json:"proposedStart" binding:"required"`
	ProposedEnd   time.Time `json:"proposedEnd" binding:"required"`
}

type RescheduleService struct {
	repos ports.Repositories
	uow   ports.UnitOfWork
	log   logrus.FieldLogger
	opts  options
}

func NewRescheduleService(repos ports.Repositories, uow ports.UnitOfWork, log logrus.FieldLogger, opts ...Option) *RescheduleService {
	return &RescheduleService{
		repos: repos,
		uow:   uow,
		log:   log,
		opts:  buildOptions(opts),
	}
}

func (s *RescheduleService) Propose(ctx context.Context, p domain.Principal, req ProposeRescheduleRequest) (*domain.RescheduleRequest, error) {
	if req.BookingID == uuid.Nil {
		return nil, domain.ErrValidation
	}

	booking, err := s.repos.Bookings.GetByID(ctx, req.BookingID)
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
	if !booking.IsActive() {
		return nil, domain.ErrInvalidStatus
	}

	pending, err := s.repos.Reschedules.HasPending(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrRescheduleExists
	}

	now := s.opts.now()
	if err := domain.ValidateProposal(req.ProposedStart, req.ProposedEnd, now); err != nil {
		return nil, err
	}

	request := &domain.RescheduleRequest{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		ProposerID:    p.UserID,
		ProposedStart: req.ProposedStart,
		ProposedEnd:   req.ProposedEnd,
		Status:        domain.ReschedulePending,
		CreatedAt:     now,
	}

	// the partial unique index catches a proposal racing past HasPending
	if err := s.repos.Reschedules.Create(ctx, request); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"booking_id": booking.ID,
		"proposer":   p.UserID,
	}).Info("reschedule proposed")

	return request, nil
}

// Accept applies the proposed window to the booking. Only the party that did
// not propose may accept.
func (s *RescheduleService) Accept(ctx context.Context, p domain.Principal, requestID uuid.UUID) (*domain.Booking, error) {
	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		request, b, err := s.loadForResponse(ctx, repos, party, p, requestID)
		if err != nil {
			return err
		}

		if !b.IsActive() {
			return domain.ErrInvalidStatus
		}

		if err := repos.Reschedules.Resolve(ctx, request.ID, domain.RescheduleAccepted, s.opts.now()); err != nil {
			return err
		}
		if err := repos.Bookings.UpdateSchedule(ctx, b.ID, request.ProposedStart, request.ProposedEnd); err != nil {
			return err
		}

		b.StartDatetime = request.ProposedStart
		b.EndDatetime = request.ProposedEnd
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"booking_id": booking.ID,
	}).Info("reschedule accepted")

	return booking, nil
}

func (s *RescheduleService) Reject(ctx context.Context, p domain.Principal, requestID uuid.UUID) (*domain.RescheduleRequest, error) {
	party, err := resolveParty(ctx, s.repos.Mentors, p)
	if err != nil {
		return nil, err
	}

	var request *domain.RescheduleRequest
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		r, _, err := s.loadForResponse(ctx, repos, party, p, requestID)
		if err != nil {
			return err
		}

		now := s.opts.now()
		if err := repos.Reschedules.Resolve(ctx, r.ID, domain.RescheduleRejected, now); err != nil {
			return err
		}

		r.Status = domain.RescheduleRejected
		r.ResponseAt = &now
		request = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("request_id", requestID).Info("reschedule rejected")
	return request, nil
}

// loadForResponse locks the booking before the request, the same order
// booking cancellation uses when it rejects pending requests.
func (s *RescheduleService) loadForResponse(ctx context.Context, repos ports.Repositories, party domain.Party, p domain.Principal, requestID uuid.UUID) (*domain.RescheduleRequest, *domain.Booking, error) {
	peek, err := repos.Reschedules.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	booking, err := repos.Bookings.GetForUpdate(ctx, peek.BookingID)
	if err != nil {
		return nil, nil, err
	}

	request, err := repos.Reschedules.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if request.Status != domain.ReschedulePending {
		return nil, nil, domain.ErrInvalidStatus
	}

	if !party.IsPartyOf(booking) || request.ProposerID == p.UserID {
		return nil, nil, domain.ErrNotAuthorized
	}

	return request, booking, nil
}

func (s *RescheduleService) ListForBooking(ctx context.Context, p domain.Principal, bookingID uuid.UUID) ([]domain.RescheduleRequest, error) {
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

	return s.repos.Reschedules.ListByBooking(ctx, bookingID)
}
