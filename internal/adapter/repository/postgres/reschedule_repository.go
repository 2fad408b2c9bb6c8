package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

const rescheduleColumns = `id, booking_id, proposer_id, proposed_start, proposed_end, status, response_at, created_at`

type RescheduleRepository struct {
	db DBTX
}

func NewRescheduleRepository(db DBTX) *RescheduleRepository {
	return &RescheduleRepository{db: db}
}

func scanReschedule(row rowScanner) (*domain.RescheduleRequest, error) {
	var req domain.RescheduleRequest
	var respondedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.BookingID,
		&req.ProposerID,
		&req.ProposedStart,
		&req.ProposedEnd,
		&req.Status,
		&respondedAt,
		&req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if respondedAt.Valid {
		req.ResponseAt = &respondedAt.Time
	}

	return &req, nil
}

func (r *RescheduleRepository) Create(ctx context.Context, req *domain.RescheduleRequest) error {
	query := `
	INSERT INTO reschedule_requests (` + rescheduleColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.BookingID, req.ProposerID, req.ProposedStart, req.ProposedEnd,
		req.Status, req.ResponseAt, req.CreatedAt,
	)
	if err != nil {
		if mapped := mapUnique(err, constraintPendingReschedule, domain.ErrRescheduleExists); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert reschedule request: %w", err)
	}

	return nil
}

func (r *RescheduleRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*domain.RescheduleRequest, error) {
	query := `SELECT ` + rescheduleColumns + ` FROM reschedule_requests WHERE id = $1`

	req, err := scanReschedule(r.db.QueryRowContext(ctx, query, requestID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrRescheduleNotFound)
	}
	return req, nil
}

func (r *RescheduleRepository) GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.RescheduleRequest, error) {
	query := `SELECT ` + rescheduleColumns + ` FROM reschedule_requests WHERE id = $1 FOR UPDATE`

	req, err := scanReschedule(r.db.QueryRowContext(ctx, query, requestID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrRescheduleNotFound)
	}
	return req, nil
}

func (r *RescheduleRepository) HasPending(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM reschedule_requests WHERE booking_id = $1 AND status = 'PENDING'
	)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Resolve only moves a PENDING request, so a response racing another one
// finds nothing to update.
func (r *RescheduleRepository) Resolve(ctx context.Context, requestID uuid.UUID, status domain.RescheduleStatus, respondedAt time.Time) error {
	query := `
	UPDATE reschedule_requests
	SET status = $1, response_at = $2
	WHERE id = $3 AND status = 'PENDING'
	`

	result, err := r.db.ExecContext(ctx, query, status, respondedAt, requestID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrInvalidStatus)
}

func (r *RescheduleRepository) RejectPendingForBooking(ctx context.Context, bookingID uuid.UUID, respondedAt time.Time) (int64, error) {
	query := `
	UPDATE reschedule_requests
	SET status = 'REJECTED', response_at = $1
	WHERE booking_id = $2 AND status = 'PENDING'
	`

	result, err := r.db.ExecContext(ctx, query, respondedAt, bookingID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *RescheduleRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.RescheduleRequest, error) {
	query := `
	SELECT ` + rescheduleColumns + `
	FROM reschedule_requests
	WHERE booking_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	requests := []domain.RescheduleRequest{}
	for rows.Next() {
		req, err := scanReschedule(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	return requests, rows.Err()
}
