package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	MenteeID  uuid.UUID `json:"menteeId"`
	MentorID  uuid.UUID `json:"mentorId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// RatingStats is the running sum and count of a mentor's reviews.
type RatingStats struct {
	Sum   int
	Count int
}

func (s RatingStats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}
