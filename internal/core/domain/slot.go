package domain

import (
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotBooked    SlotStatus = "BOOKED"
	SlotCancelled SlotStatus = "CANCELLED"
)

type Slot struct {
	ID                uuid.UUID  `json:"id"`
	MentorID          uuid.UUID  `json:"mentorId"`
	StartDatetime     time.Time  `json:"startDatetime"`
	EndDatetime       time.Time  `json:"endDatetime"`
	Status            SlotStatus `json:"status"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurrencePattern *string    `json:"recurrencePattern,omitempty"`
	RecurrenceEndDate *time.Time `json:"recurrenceEndDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// Occupies reports whether the slot takes part in the per-mentor overlap rule.
func (s *Slot) Occupies() bool {
	return s.Status == SlotAvailable || s.Status == SlotBooked
}

// Overlaps uses half-open windows, so back-to-back slots do not collide.
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.StartDatetime.Before(end) && start.Before(s.EndDatetime)
}

// ValidateWindow checks a proposed slot window against now.
func ValidateWindow(start, end, now time.Time) error {
	if !start.After(now) {
		return ErrInvalidStartTime
	}
	if !end.After(start) {
		return ErrInvalidEndTime
	}
	return nil
}

// SetRecurrence stores the recurrence record; a non-recurring slot keeps no pattern.
func (s *Slot) SetRecurrence(recurring bool, pattern *string, endDate *time.Time) {
	s.IsRecurring = recurring
	if !recurring {
		s.RecurrencePattern = nil
		s.RecurrenceEndDate = nil
		return
	}
	s.RecurrencePattern = pattern
	s.RecurrenceEndDate = endDate
}
