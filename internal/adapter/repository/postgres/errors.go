package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// Constraint names from schema.sql that surface as domain conflicts.
const (
	constraintActiveBookingPerSlot = "bookings_active_slot_key"
	constraintReviewPerBooking     = "reviews_booking_id_key"
	constraintPendingReschedule    = "reschedule_requests_pending_key"
	constraintExpertisePerTopic    = "mentor_expertise_mentor_id_topic_id_key"
)

func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.UniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// mapUnique returns conflict when err violates the named unique constraint.
func mapUnique(err error, constraint string, conflict error) error {
	if name, ok := uniqueViolation(err); ok && name == constraint {
		return conflict
	}
	return err
}

// mapNoRows translates an empty result into the caller's not-found sentinel.
func mapNoRows(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}
