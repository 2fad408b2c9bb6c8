package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

type CreateSlotRequest struct {
	StartDatetime     time.Time  `json:"startDatetime" binding:"required"`
	EndDatetime       time.Time  `json:"endDatetime" binding:"required"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurrencePattern *string    `json:"recurrencePattern" binding:"omitempty,max=100"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
}

type UpdateSlotRequest struct {
	StartDatetime     *time.Time `json:"startDatetime"`
	EndDatetime       *time.Time `json:"endDatetime"`
	IsRecurring       *bool      `json:"isRecurring"`
	RecurrencePattern *string    `json:"recurrencePattern" binding:"omitempty,max=100"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate"`
}

type SlotService struct {
	repos ports.Repositories
	uow   ports.UnitOfWork
	cache *redis.Client
	log   logrus.FieldLogger
	opts  options
}

func NewSlotService(repos ports.Repositories, uow ports.UnitOfWork, cache *redis.Client, log logrus.FieldLogger, opts ...Option) *SlotService {
	return &SlotService{
		repos: repos,
		uow:   uow,
		cache: cache,
		log:   log,
		opts:  buildOptions(opts),
	}
}

func (s *SlotService) mentorID(ctx context.Context, p domain.Principal) (uuid.UUID, error) {
	if p.Role != domain.RoleMentor {
		return uuid.Nil, domain.ErrNotAuthorized
	}
	return s.repos.Mentors.MentorIDForUser(ctx, p.UserID)
}

// CreateSlot publishes a new window. The mentor row is locked for the
// duration so two concurrent creates cannot both pass the overlap check.
func (s *SlotService) CreateSlot(ctx context.Context, p domain.Principal, req CreateSlotRequest) (*domain.Slot, error) {
	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	if err := domain.ValidateWindow(req.StartDatetime, req.EndDatetime, now); err != nil {
		return nil, err
	}

	slot := &domain.Slot{
		ID:            uuid.New(),
		MentorID:      mentorID,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Status:        domain.SlotAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	slot.SetRecurrence(req.IsRecurring, req.RecurrencePattern, req.RecurrenceEndDate)

	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		if err := repos.Mentors.LockForUpdate(ctx, mentorID); err != nil {
			return err
		}

		overlapping, err := repos.Slots.FindOverlapping(ctx, mentorID, slot.StartDatetime, slot.EndDatetime, uuid.Nil)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return domain.ErrSlotOverlap
		}

		return repos.Slots.Create(ctx, slot)
	})
	if err != nil {
		return nil, err
	}

	invalidateSlotCache(ctx, s.cache, s.log, mentorID)
	s.log.WithFields(logrus.Fields{
		"slot_id":   slot.ID,
		"mentor_id": mentorID,
	}).Info("availability slot created")

	return slot, nil
}

// UpdateSlot patches the window and recurrence. Pattern and end date are only
// accepted together with isRecurring.
func (s *SlotService) UpdateSlot(ctx context.Context, p domain.Principal, slotID uuid.UUID, req UpdateSlotRequest) (*domain.Slot, error) {
	if req.IsRecurring == nil && (req.RecurrencePattern != nil || req.RecurrenceEndDate != nil) {
		return nil, domain.ErrValidation
	}

	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return nil, err
	}

	var slot *domain.Slot
	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		if err := repos.Mentors.LockForUpdate(ctx, mentorID); err != nil {
			return err
		}

		sl, err := s.ownedSlot(ctx, repos, mentorID, slotID)
		if err != nil {
			return err
		}

		if req.StartDatetime != nil || req.EndDatetime != nil {
			start, end := sl.StartDatetime, sl.EndDatetime
			if req.StartDatetime != nil {
				start = *req.StartDatetime
			}
			if req.EndDatetime != nil {
				end = *req.EndDatetime
			}

			if err := domain.ValidateWindow(start, end, s.opts.now()); err != nil {
				return err
			}

			overlapping, err := repos.Slots.FindOverlapping(ctx, mentorID, start, end, sl.ID)
			if err != nil {
				return err
			}
			if len(overlapping) > 0 {
				return domain.ErrSlotOverlap
			}

			sl.StartDatetime, sl.EndDatetime = start, end
		}

		if req.IsRecurring != nil {
			sl.SetRecurrence(*req.IsRecurring, req.RecurrencePattern, req.RecurrenceEndDate)
		}
		sl.UpdatedAt = s.opts.now()

		if err := repos.Slots.Update(ctx, sl); err != nil {
			return err
		}

		slot = sl
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateSlotCache(ctx, s.cache, s.log, mentorID)
	return slot, nil
}

// CancelSlot soft-deletes the slot; referenced slots are never removed.
func (s *SlotService) CancelSlot(ctx context.Context, p domain.Principal, slotID uuid.UUID) error {
	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return err
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos ports.Repositories) error {
		sl, err := s.ownedSlot(ctx, repos, mentorID, slotID)
		if err != nil {
			return err
		}
		return repos.Slots.SetStatus(ctx, sl.ID, domain.SlotCancelled)
	})
	if err != nil {
		return err
	}

	invalidateSlotCache(ctx, s.cache, s.log, mentorID)
	s.log.WithField("slot_id", slotID).Info("availability slot cancelled")
	return nil
}

// ownedSlot loads a slot the mentor may still edit: not booked, not
// cancelled, and not referenced by a pending booking.
func (s *SlotService) ownedSlot(ctx context.Context, repos ports.Repositories, mentorID, slotID uuid.UUID) (*domain.Slot, error) {
	sl, err := repos.Slots.GetForUpdate(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if sl.MentorID != mentorID {
		return nil, domain.ErrSlotNotFound
	}

	switch sl.Status {
	case domain.SlotBooked:
		return nil, domain.ErrSlotBooked
	case domain.SlotCancelled:
		return nil, domain.ErrInvalidStatus
	}

	held, err := repos.Bookings.HasActiveForSlot(ctx, sl.ID)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, domain.ErrSlotBooked
	}

	return sl, nil
}

func (s *SlotService) ListMySlots(ctx context.Context, p domain.Principal) ([]domain.Slot, error) {
	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.repos.Slots.ListAvailableByMentor(ctx, mentorID, s.opts.now())
}

// ListAvailable is the public view of a mentor's open slots, served through
// the redis cache when one is configured.
func (s *SlotService) ListAvailable(ctx context.Context, mentorID uuid.UUID) ([]domain.Slot, error) {
	now := s.opts.now()

	cached, ok, err := readSlotCache(ctx, s.cache, mentorID)
	if err != nil {
		s.log.WithError(err).WithField("mentor_id", mentorID).Warn("slot cache read failed")
	}
	if ok {
		return stillOpen(cached, now), nil
	}

	if _, err := s.repos.Mentors.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}

	slots, err := s.repos.Slots.ListAvailableByMentor(ctx, mentorID, now)
	if err != nil {
		return nil, err
	}

	if err := writeSlotCache(ctx, s.cache, mentorID, slots, s.opts.slotCacheTTL); err != nil {
		s.log.WithError(err).WithField("mentor_id", mentorID).Warn("slot cache write failed")
	}

	return slots, nil
}

func stillOpen(slots []domain.Slot, now time.Time) []domain.Slot {
	open := make([]domain.Slot, 0, len(slots))
	for _, sl := range slots {
		if !sl.EndDatetime.Before(now) {
			open = append(open, sl)
		}
	}
	return open
}
