package domain

import (
	"time"

	"github.com/google/uuid"
)

type Expertise struct {
	ID              uuid.UUID `json:"id"`
	MentorID        uuid.UUID `json:"mentorId"`
	TopicID         uuid.UUID `json:"topicId"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	Description     *string   `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BelongsTo reports whether a booking against mentorID may use this offer.
func (e *Expertise) BelongsTo(mentorID uuid.UUID) bool {
	return e.IsActive && e.MentorID == mentorID
}

type Mentor struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
}
