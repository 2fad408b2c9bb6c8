package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

const bookingColumns = `id, mentee_id, mentor_id, mentor_expertise_id, availability_slot_id, start_datetime, end_datetime, total_price, mentee_notes, status, payment_status, created_at, updated_at`

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var notes sql.NullString

	err := row.Scan(
		&b.ID,
		&b.MenteeID,
		&b.MentorID,
		&b.MentorExpertiseID,
		&b.AvailabilitySlotID,
		&b.StartDatetime,
		&b.EndDatetime,
		&b.TotalPrice,
		&notes,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		b.MenteeNotes = &notes.String
	}

	return &b, nil
}

// CreateBooking relies on bookings_active_slot_key to reject a second
// PENDING or CONFIRMED booking for the same slot.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.MenteeID, booking.MentorID, booking.MentorExpertiseID, booking.AvailabilitySlotID,
		booking.StartDatetime, booking.EndDatetime, booking.TotalPrice, booking.MenteeNotes,
		booking.Status, booking.PaymentStatus, booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUnique(err, constraintActiveBookingPerSlot, domain.ErrDoubleBooking); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrBookingNotFound)
	}
	return b, nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrBookingNotFound)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	query := `
	UPDATE bookings
	SET status = $1, updated_at = $2
	WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), bookingID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrBookingNotFound)
}

func (r *BookingRepository) UpdateSchedule(ctx context.Context, bookingID uuid.UUID, start, end time.Time) error {
	query := `
	UPDATE bookings
	SET start_datetime = $1, end_datetime = $2, updated_at = $3
	WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, start, end, time.Now(), bookingID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrBookingNotFound)
}

func (r *BookingRepository) HasActiveForSlot(ctx context.Context, slotID uuid.UUID) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE availability_slot_id = $1 AND status IN ('PENDING', 'CONFIRMED')
	)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slotID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CancelPendingForSlot cancels every PENDING booking on the slot except keepID.
func (r *BookingRepository) CancelPendingForSlot(ctx context.Context, slotID, keepID uuid.UUID) ([]uuid.UUID, error) {
	query := `
	UPDATE bookings
	SET status = 'CANCELLED', updated_at = $1
	WHERE availability_slot_id = $2 AND status = 'PENDING' AND id <> $3
	RETURNING id
	`

	rows, err := r.db.QueryContext(ctx, query, time.Now(), slotID, keepID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *BookingRepository) CountActiveForExpertise(ctx context.Context, expertiseID uuid.UUID) (int, error) {
	query := `
	SELECT COUNT(*) FROM bookings
	WHERE mentor_expertise_id = $1 AND status IN ('PENDING', 'CONFIRMED')
	`

	var n int
	if err := r.db.QueryRowContext(ctx, query, expertiseID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *BookingRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.listBy(ctx, "mentor_id", mentorID, status)
}

func (r *BookingRepository) ListByMentee(ctx context.Context, menteeID uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.listBy(ctx, "mentee_id", menteeID, status)
}

// listBy filters on column, which is always one of the two constants above.
func (r *BookingRepository) listBy(ctx context.Context, column string, id uuid.UUID, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE ` + column + ` = $1 AND ($2::text = '' OR status = $2)
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, id, string(status))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}
