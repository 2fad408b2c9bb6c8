package domain

import (
	"time"

	"github.com/google/uuid"
)

type RescheduleStatus string

const (
	ReschedulePending  RescheduleStatus = "PENDING"
	RescheduleAccepted RescheduleStatus = "ACCEPTED"
	RescheduleRejected RescheduleStatus = "REJECTED"
)

type RescheduleRequest struct {
	ID            uuid.UUID        `json:"id"`
	BookingID     uuid.UUID        `json:"bookingId"`
	ProposerID    uuid.UUID        `json:"proposerId"`
	ProposedStart time.Time        `json:"proposedStart"`
	ProposedEnd   time.Time        `json:"proposedEnd"`
	Status        RescheduleStatus `json:"status"`
	ResponseAt    *time.Time       `json:"responseAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ValidateProposal rejects windows starting in the past or not ending after they start.
func ValidateProposal(start, end, now time.Time) error {
	if start.Before(now) || !end.After(start) {
		return ErrInvalidTime
	}
	return nil
}
