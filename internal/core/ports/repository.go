package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) error
	Update(ctx context.Context, slot *domain.Slot) error
	GetByID(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error)
	// GetForUpdate row-locks the slot until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error)
	ListAvailableByMentor(ctx context.Context, mentorID uuid.UUID, endingAfter time.Time) ([]domain.Slot, error)
	// FindOverlapping returns AVAILABLE or BOOKED slots of the mentor intersecting [start, end).
	FindOverlapping(ctx context.Context, mentorID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]domain.Slot, error)
	// LockSlot moves AVAILABLE -> BOOKED and fails with ErrSlotUnavailable otherwise.
	LockSlot(ctx context.Context, slotID uuid.UUID) error
	// UnlockSlot moves BOOKED -> AVAILABLE; it is a no-op for any other status.
	UnlockSlot(ctx context.Context, slotID uuid.UUID) error
	SetStatus(ctx context.Context, slotID uuid.UUID, status domain.SlotStatus) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	GetForUpdate(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
	UpdateSchedule(ctx context.Context, bookingID uuid.UUID, start, end time.Time) error
	HasActiveForSlot(ctx context.Context, slotID uuid.UUID) (bool, error)
	// CancelPendingForSlot cancels every PENDING booking on the slot except
	// keepID and returns the ids it cancelled.
	CancelPendingForSlot(ctx context.Context, slotID, keepID uuid.UUID) ([]uuid.UUID, error)
	CountActiveForExpertise(ctx context.Context, expertiseID uuid.UUID) (int, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error)
	ListByMentee(ctx context.Context, menteeID uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error)
}

type RescheduleRepository interface {
	Create(ctx context.Context, req *domain.RescheduleRequest) error
	GetByID(ctx context.Context, requestID uuid.UUID) (*domain.RescheduleRequest, error)
	GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.RescheduleRequest, error)
	HasPending(ctx context.Context, bookingID uuid.UUID) (bool, error)
	Resolve(ctx context.Context, requestID uuid.UUID, status domain.RescheduleStatus, respondedAt time.Time) error
	RejectPendingForBooking(ctx context.Context, bookingID uuid.UUID, respondedAt time.Time) (int64, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.RescheduleRequest, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Review, error)
	StatsForMentor(ctx context.Context, mentorID uuid.UUID) (domain.RatingStats, error)
}

type ExpertiseRepository interface {
	Create(ctx context.Context, e *domain.Expertise) error
	Update(ctx context.Context, e *domain.Expertise) error
	GetByID(ctx context.Context, expertiseID uuid.UUID) (*domain.Expertise, error)
	FindByMentorAndTopic(ctx context.Context, mentorID, topicID uuid.UUID) (*domain.Expertise, error)
	Deactivate(ctx context.Context, expertiseID uuid.UUID) error
	ListActiveByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Expertise, error)
	TopicExists(ctx context.Context, topicID uuid.UUID) (bool, error)
}

// MentorRepository owns the mentor aggregate row and the user -> profile lookup.
type MentorRepository interface {
	GetByID(ctx context.Context, mentorID uuid.UUID) (*domain.Mentor, error)
	LockForUpdate(ctx context.Context, mentorID uuid.UUID) error
	UpdateRating(ctx context.Context, mentorID uuid.UUID, average float64, total int) error
	MentorIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	MenteeIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

// Repositories is one consistent view of storage: either autocommit or
// bound to a single transaction.
type Repositories struct {
	Slots       SlotRepository
	Bookings    BookingRepository
	Reschedules RescheduleRepository
	Reviews     ReviewRepository
	Expertise   ExpertiseRepository
	Mentors     MentorRepository
}

// UnitOfWork runs fn inside one transaction. Returning an error (or
// panicking) from fn rolls every write back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
