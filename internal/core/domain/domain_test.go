package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

func TestParseRole(t *testing.T) {
	for _, in := range []string{"mentor", "MENTOR", " Mentor "} {
		r, err := domain.ParseRole(in)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleMentor, r)
	}

	r, err := domain.ParseRole("mentee")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleMentee, r)

	_, err = domain.ParseRole("admin")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestSlotOverlaps(t *testing.T) {
	base := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	slot := &domain.Slot{StartDatetime: base, EndDatetime: base.Add(time.Hour)}

	assert.True(t, slot.Overlaps(base.Add(30*time.Minute), base.Add(90*time.Minute)))
	assert.True(t, slot.Overlaps(base.Add(-time.Hour), base.Add(2*time.Hour)))
	assert.False(t, slot.Overlaps(base.Add(time.Hour), base.Add(2*time.Hour)), "back-to-back slots must not collide")
	assert.False(t, slot.Overlaps(base.Add(-time.Hour), base))
}

func TestValidateWindow(t *testing.T) {
	now := time.Now()

	assert.ErrorIs(t, domain.ValidateWindow(now, now.Add(time.Hour), now), domain.ErrInvalidStartTime)
	assert.ErrorIs(t, domain.ValidateWindow(now.Add(time.Hour), now.Add(time.Hour), now), domain.ErrInvalidEndTime)
	assert.NoError(t, domain.ValidateWindow(now.Add(time.Hour), now.Add(2*time.Hour), now))
}

func TestSetRecurrenceClearsPattern(t *testing.T) {
	pattern := "WEEKLY"
	end := time.Now().Add(30 * 24 * time.Hour)
	slot := &domain.Slot{}

	slot.SetRecurrence(true, &pattern, &end)
	assert.True(t, slot.IsRecurring)
	assert.Equal(t, &pattern, slot.RecurrencePattern)

	slot.SetRecurrence(false, &pattern, &end)
	assert.False(t, slot.IsRecurring)
	assert.Nil(t, slot.RecurrencePattern)
	assert.Nil(t, slot.RecurrenceEndDate)
}

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from domain.BookingStatus
		to   domain.BookingStatus
		ok   bool
	}{
		{domain.BookingPending, domain.BookingConfirmed, true},
		{domain.BookingPending, domain.BookingCancelled, true},
		{domain.BookingPending, domain.BookingCompleted, false},
		{domain.BookingConfirmed, domain.BookingCompleted, true},
		{domain.BookingConfirmed, domain.BookingCancelled, true},
		{domain.BookingConfirmed, domain.BookingConfirmed, false},
		{domain.BookingCancelled, domain.BookingConfirmed, false},
		{domain.BookingCancelled, domain.BookingCancelled, false},
		{domain.BookingCompleted, domain.BookingCancelled, false},
	}

	for _, tc := range cases {
		b := &domain.Booking{Status: tc.from}
		assert.Equal(t, tc.ok, b.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingHasEnded(t *testing.T) {
	end := time.Date(2030, 1, 1, 11, 0, 0, 0, time.UTC)
	b := &domain.Booking{EndDatetime: end}

	assert.False(t, b.HasEnded(end.Add(-time.Nanosecond)))
	assert.True(t, b.HasEnded(end))
	assert.True(t, b.HasEnded(end.Add(time.Minute)))
}

func TestPartyOfBooking(t *testing.T) {
	mentorID, menteeID := uuid.New(), uuid.New()
	b := &domain.Booking{MentorID: mentorID, MenteeID: menteeID}

	assert.True(t, domain.Party{MentorID: &mentorID}.IsMentorOf(b))
	assert.True(t, domain.Party{MenteeID: &menteeID}.IsPartyOf(b))

	stranger := uuid.New()
	assert.False(t, domain.Party{MentorID: &stranger, MenteeID: &stranger}.IsPartyOf(b))
	assert.False(t, domain.Party{}.IsPartyOf(b))
}

func TestValidateProposal(t *testing.T) {
	now := time.Now()

	assert.ErrorIs(t, domain.ValidateProposal(now.Add(-time.Minute), now.Add(time.Hour), now), domain.ErrInvalidTime)
	assert.ErrorIs(t, domain.ValidateProposal(now.Add(time.Hour), now.Add(time.Hour), now), domain.ErrInvalidTime)
	assert.NoError(t, domain.ValidateProposal(now.Add(time.Hour), now.Add(2*time.Hour), now))
}

func TestRatingStatsAverage(t *testing.T) {
	assert.Equal(t, 0.0, domain.RatingStats{}.Average())
	assert.Equal(t, 4.0, domain.RatingStats{Sum: 12, Count: 3}.Average())
	assert.InDelta(t, 3.5, domain.RatingStats{Sum: 7, Count: 2}.Average(), 1e-9)

	assert.ErrorIs(t, domain.ValidateRating(0), domain.ErrInvalidRating)
	assert.ErrorIs(t, domain.ValidateRating(6), domain.ErrInvalidRating)
	assert.NoError(t, domain.ValidateRating(5))
}

func TestAsError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrDoubleBooking)

	de, ok := domain.AsError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "DOUBLE_BOOKING", de.Code)
	assert.Equal(t, 409, de.Status)

	_, ok = domain.AsError(errors.New("boom"))
	assert.False(t, ok)
}
