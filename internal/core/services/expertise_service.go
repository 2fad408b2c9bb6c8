package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

type AddExpertiseRequest struct {
	TopicID         uuid.UUID `json:"topicId" binding:"required"`
	Price           float64   `json:"price" binding:"min=0"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=1,max=480"`
	Description     *string   `json:"description" binding:"omitempty,max=500"`
}

type UpdateExpertiseRequest struct {
	TopicID         *uuid.UUID `json:"topicId"`
	Price           *float64   `json:"price" binding:"omitempty,min=0"`
	DurationMinutes *int       `json:"durationMinutes" binding:"omitempty,min=1,max=480"`
	Description     *string    `json:"description" binding:"omitempty,max=500"`
}

type ExpertiseService struct {
	repos ports.Repositories
	log   logrus.FieldLogger
	opts  options
}

func NewExpertiseService(repos ports.Repositories, log logrus.FieldLogger, opts ...Option) *ExpertiseService {
	return &ExpertiseService{
		repos: repos,
		log:   log,
		opts:  buildOptions(opts),
	}
}

func (s *ExpertiseService) mentorID(ctx context.Context, p domain.Principal) (uuid.UUID, error) {
	if p.Role != domain.RoleMentor {
		return uuid.Nil, domain.ErrNotAuthorized
	}
	return s.repos.Mentors.MentorIDForUser(ctx, p.UserID)
}

// AddExpertise creates the (mentor, topic) offer. A previously deleted offer
// for the same topic is reactivated with the new terms.
func (s *ExpertiseService) AddExpertise(ctx context.Context, p domain.Principal, req AddExpertiseRequest) (*domain.Expertise, error) {
	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return nil, err
	}
	if req.TopicID == uuid.Nil || req.Price < 0 || req.DurationMinutes <= 0 {
		return nil, domain.ErrValidation
	}

	if err := s.requireTopic(ctx, req.TopicID); err != nil {
		return nil, err
	}

	now := s.opts.now()

	existing, err := s.repos.Expertise.FindByMentorAndTopic(ctx, mentorID, req.TopicID)
	if err != nil && !errors.Is(err, domain.ErrExpertiseNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return nil, domain.ErrExpertiseExists
		}

		existing.Price = req.Price
		existing.DurationMinutes = req.DurationMinutes
		existing.Description = req.Description
		existing.IsActive = true
		existing.UpdatedAt = now
		if err := s.repos.Expertise.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	expertise := &domain.Expertise{
		ID:              uuid.New(),
		MentorID:        mentorID,
		TopicID:         req.TopicID,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repos.Expertise.Create(ctx, expertise); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"expertise_id": expertise.ID,
		"mentor_id":    mentorID,
	}).Info("expertise added")

	return expertise, nil
}

func (s *ExpertiseService) UpdateExpertise(ctx context.Context, p domain.Principal, expertiseID uuid.UUID, req UpdateExpertiseRequest) (*domain.Expertise, error) {
	expertise, err := s.owned(ctx, p, expertiseID)
	if err != nil {
		return nil, err
	}

	if req.TopicID != nil && *req.TopicID != expertise.TopicID {
		if err := s.requireTopic(ctx, *req.TopicID); err != nil {
			return nil, err
		}

		dup, err := s.repos.Expertise.FindByMentorAndTopic(ctx, expertise.MentorID, *req.TopicID)
		if err != nil && !errors.Is(err, domain.ErrExpertiseNotFound) {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrExpertiseExists
		}
		expertise.TopicID = *req.TopicID
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, domain.ErrValidation
		}
		expertise.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, domain.ErrValidation
		}
		expertise.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		expertise.Description = req.Description
	}
	expertise.UpdatedAt = s.opts.now()

	if err := s.repos.Expertise.Update(ctx, expertise); err != nil {
		return nil, err
	}
	return expertise, nil
}

// DeleteExpertise is a soft delete, refused while bookings still use the offer.
func (s *ExpertiseService) DeleteExpertise(ctx context.Context, p domain.Principal, expertiseID uuid.UUID) error {
	expertise, err := s.owned(ctx, p, expertiseID)
	if err != nil {
		return err
	}

	active, err := s.repos.Bookings.CountActiveForExpertise(ctx, expertise.ID)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrExpertiseHasBookings
	}

	if err := s.repos.Expertise.Deactivate(ctx, expertise.ID); err != nil {
		return err
	}

	s.log.WithField("expertise_id", expertise.ID).Info("expertise deactivated")
	return nil
}

func (s *ExpertiseService) ListExpertise(ctx context.Context, p domain.Principal) ([]domain.Expertise, error) {
	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.repos.Expertise.ListActiveByMentor(ctx, mentorID)
}

func (s *ExpertiseService) owned(ctx context.Context, p domain.Principal, expertiseID uuid.UUID) (*domain.Expertise, error) {
	mentorID, err := s.mentorID(ctx, p)
	if err != nil {
		return nil, err
	}

	expertise, err := s.repos.Expertise.GetByID(ctx, expertiseID)
	if err != nil {
		return nil, err
	}
	if expertise.MentorID != mentorID || !expertise.IsActive {
		return nil, domain.ErrExpertiseNotFound
	}
	return expertise, nil
}

func (s *ExpertiseService) requireTopic(ctx context.Context, topicID uuid.UUID) error {
	ok, err := s.repos.Expertise.TopicExists(ctx, topicID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTopicNotFound
	}
	return nil
}
