package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports/mocks"
)

// inlineUnitOfWork runs fn directly against the mocked repositories.
type inlineUnitOfWork struct {
	repos ports.Repositories
}

func (u inlineUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return fn(ctx, u.repos)
}

type repoMocks struct {
	slots       *mocks.SlotRepository
	bookings    *mocks.BookingRepository
	reschedules *mocks.RescheduleRepository
	reviews     *mocks.ReviewRepository
	expertise   *mocks.ExpertiseRepository
	mentors     *mocks.MentorRepository
}

func newRepoMocks(t *testing.T) (*repoMocks, ports.Repositories, inlineUnitOfWork) {
	m := &repoMocks{
		slots:       mocks.NewSlotRepository(t),
		bookings:    mocks.NewBookingRepository(t),
		reschedules: mocks.NewRescheduleRepository(t),
		reviews:     mocks.NewReviewRepository(t),
		expertise:   mocks.NewExpertiseRepository(t),
		mentors:     mocks.NewMentorRepository(t),
	}
	repos := ports.Repositories{
		Slots:       m.slots,
		Bookings:    m.bookings,
		Reschedules: m.reschedules,
		Reviews:     m.reviews,
		Expertise:   m.expertise,
		Mentors:     m.mentors,
	}
	return m, repos, inlineUnitOfWork{repos: repos}
}

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func mentorPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.New(), Role: domain.RoleMentor}
}

func menteePrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.New(), Role: domain.RoleMentee}
}

// seed builds a mentor with one open slot and one expertise offer in a
// memStore, plus a mentee able to book it.
type seed struct {
	store       *memStore
	mentor      domain.Principal
	mentee      domain.Principal
	mentorID    uuid.UUID
	menteeID    uuid.UUID
	slot        domain.Slot
	expertiseID uuid.UUID
}

func newSeed(now time.Time) *seed {
	s := &seed{
		store:       newMemStore(),
		mentor:      mentorPrincipal(),
		mentee:      menteePrincipal(),
		mentorID:    uuid.New(),
		menteeID:    uuid.New(),
		expertiseID: uuid.New(),
	}

	s.store.mentors[s.mentorID] = domain.Mentor{ID: s.mentorID, UserID: s.mentor.UserID}
	s.store.mentees[s.mentee.UserID] = s.menteeID
	s.store.expertise[s.expertiseID] = domain.Expertise{
		ID:              s.expertiseID,
		MentorID:        s.mentorID,
		TopicID:         uuid.New(),
		Price:           50,
		DurationMinutes: 60,
		IsActive:        true,
	}

	s.slot = domain.Slot{
		ID:            uuid.New(),
		MentorID:      s.mentorID,
		StartDatetime: now.Add(24 * time.Hour),
		EndDatetime:   now.Add(25 * time.Hour),
		Status:        domain.SlotAvailable,
	}
	s.store.slots[s.slot.ID] = s.slot

	return s
}

// addMentee registers another mentee profile in the store.
func (s *seed) addMentee() domain.Principal {
	p := menteePrincipal()
	s.store.mentees[p.UserID] = uuid.New()
	return p
}

// addSlot publishes another open slot a day after now and makes it current.
func (s *seed) addSlot(now time.Time) {
	s.slot = domain.Slot{
		ID:            uuid.New(),
		MentorID:      s.mentorID,
		StartDatetime: now.Add(24 * time.Hour),
		EndDatetime:   now.Add(25 * time.Hour),
		Status:        domain.SlotAvailable,
	}
	s.store.mu.Lock()
	s.store.slots[s.slot.ID] = s.slot
	s.store.mu.Unlock()
}
