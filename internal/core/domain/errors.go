package domain

import (
	"errors"
	"net/http"
)

// Error is a business failure carrying a machine-readable code and the HTTP
// status class it maps to.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(status int, code, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

var (
	ErrValidation      = newError(http.StatusBadRequest, "VALIDATION_ERROR", "invalid request")
	ErrInvalidRole     = newError(http.StatusForbidden, "INVALID_ROLE", "invalid role")
	ErrNotAuthorized   = newError(http.StatusForbidden, "NOT_AUTHORIZED", "not authorized to perform this action")
	ErrProfileNotFound = newError(http.StatusNotFound, "PROFILE_NOT_FOUND", "profile not found")
	ErrMentorNotFound  = newError(http.StatusNotFound, "MENTOR_NOT_FOUND", "mentor not found")

	ErrSlotNotFound     = newError(http.StatusNotFound, "SLOT_NOT_FOUND", "availability slot not found")
	ErrSlotUnavailable  = newError(http.StatusBadRequest, "SLOT_UNAVAILABLE", "slot not available")
	ErrSlotOverlap      = newError(http.StatusConflict, "SLOT_OVERLAP", "time slot overlaps with existing availability")
	ErrSlotBooked       = newError(http.StatusBadRequest, "SLOT_BOOKED", "slot is booked")
	ErrInvalidStartTime = newError(http.StatusBadRequest, "INVALID_START_TIME", "start time must be in the future")
	ErrInvalidEndTime   = newError(http.StatusBadRequest, "INVALID_END_TIME", "end time must be after start time")

	ErrTopicNotFound        = newError(http.StatusNotFound, "TOPIC_NOT_FOUND", "topic not found")
	ErrExpertiseNotFound    = newError(http.StatusNotFound, "EXPERTISE_NOT_FOUND", "expertise not found")
	ErrExpertiseExists      = newError(http.StatusConflict, "EXPERTISE_EXISTS", "expertise already exists for this topic")
	ErrExpertiseHasBookings = newError(http.StatusBadRequest, "EXPERTISE_HAS_BOOKINGS", "cannot delete expertise with active bookings")
	ErrInvalidExpertise     = newError(http.StatusBadRequest, "INVALID_EXPERTISE", "invalid expertise for mentor")

	ErrBookingNotFound = newError(http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
	ErrDoubleBooking   = newError(http.StatusConflict, "DOUBLE_BOOKING", "slot already booked")
	ErrInvalidStatus   = newError(http.StatusBadRequest, "INVALID_STATUS", "operation not allowed in current status")
	ErrSessionNotEnded = newError(http.StatusBadRequest, "SESSION_NOT_ENDED", "session has not ended yet")
	ErrInvalidTime     = newError(http.StatusBadRequest, "INVALID_TIME", "invalid time range")

	ErrRescheduleNotFound = newError(http.StatusNotFound, "RESCHEDULE_NOT_FOUND", "reschedule request not found")
	ErrRescheduleExists   = newError(http.StatusConflict, "RESCHEDULE_EXISTS", "a pending reschedule request already exists for this booking")

	ErrInvalidBookingStatus = newError(http.StatusBadRequest, "INVALID_BOOKING_STATUS", "only completed bookings can be reviewed")
	ErrInvalidRating        = newError(http.StatusBadRequest, "INVALID_RATING", "rating must be between 1 and 5")
	ErrReviewExists         = newError(http.StatusConflict, "REVIEW_EXISTS", "review already exists for this booking")
	ErrReviewNotFound       = newError(http.StatusNotFound, "REVIEW_NOT_FOUND", "review not found")
)

// AsError unwraps err into a *Error when one is in the chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
