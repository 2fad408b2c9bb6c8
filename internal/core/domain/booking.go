package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// ParseBookingStatus accepts the empty string as "no filter".
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case "", BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return st, nil
	}
	return "", ErrValidation
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Booking struct {
	ID                 uuid.UUID     `json:"id"`
	MenteeID           uuid.UUID     `json:"menteeId"`
	MentorID           uuid.UUID     `json:"mentorId"`
	MentorExpertiseID  uuid.UUID     `json:"mentorExpertiseId"`
	AvailabilitySlotID uuid.UUID     `json:"availabilitySlotId"`
	StartDatetime      time.Time     `json:"startDatetime"`
	EndDatetime        time.Time     `json:"endDatetime"`
	TotalPrice         float64       `json:"totalPrice"`
	MenteeNotes        *string       `json:"menteeNotes,omitempty"`
	Status             BookingStatus `json:"status"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// IsActive reports whether the booking still holds a claim on its slot.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

func (b *Booking) IsTerminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}

// CanTransition encodes the lifecycle:
// PENDING -> CONFIRMED -> COMPLETED, and PENDING|CONFIRMED -> CANCELLED.
func (b *Booking) CanTransition(to BookingStatus) bool {
	switch to {
	case BookingConfirmed:
		return b.Status == BookingPending
	case BookingCompleted:
		return b.Status == BookingConfirmed
	case BookingCancelled:
		return b.IsActive()
	}
	return false
}

// HasEnded compares against the wall clock at or after the end.
func (b *Booking) HasEnded(now time.Time) bool {
	return !now.Before(b.EndDatetime)
}
