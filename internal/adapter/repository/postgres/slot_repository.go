package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

const slotColumns = `id, mentor_id, start_datetime, end_datetime, status, is_recurring, recurrence_pattern, recurrence_end_date, created_at, updated_at`

type SlotRepository struct {
	db DBTX
}

func NewSlotRepository(db DBTX) *SlotRepository {
	return &SlotRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var pattern sql.NullString
	var recurrenceEnd sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.MentorID,
		&slot.StartDatetime,
		&slot.EndDatetime,
		&slot.Status,
		&slot.IsRecurring,
		&pattern,
		&recurrenceEnd,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pattern.Valid {
		slot.RecurrencePattern = &pattern.String
	}
	if recurrenceEnd.Valid {
		slot.RecurrenceEndDate = &recurrenceEnd.Time
	}

	return &slot, nil
}

func (r *SlotRepository) Create(ctx context.Context, slot *domain.Slot) error {
	query := `
	INSERT INTO availability_slots (` + slotColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		slot.ID, slot.MentorID, slot.StartDatetime, slot.EndDatetime, slot.Status,
		slot.IsRecurring, slot.RecurrencePattern, slot.RecurrenceEndDate, slot.CreatedAt, slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) Update(ctx context.Context, slot *domain.Slot) error {
	query := `
	UPDATE availability_slots
	SET start_datetime = $1,
		end_datetime = $2,
		is_recurring = $3,
		recurrence_pattern = $4,
		recurrence_end_date = $5,
		updated_at = $6
	WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		slot.StartDatetime, slot.EndDatetime, slot.IsRecurring, slot.RecurrencePattern,
		slot.RecurrenceEndDate, slot.UpdatedAt, slot.ID,
	)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrSlotNotFound)
}

func (r *SlotRepository) GetByID(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM availability_slots WHERE id = $1`

	slot, err := scanSlot(r.db.QueryRowContext(ctx, query, slotID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrSlotNotFound)
	}
	return slot, nil
}

func (r *SlotRepository) GetForUpdate(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM availability_slots WHERE id = $1 FOR UPDATE`

	slot, err := scanSlot(r.db.QueryRowContext(ctx, query, slotID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrSlotNotFound)
	}
	return slot, nil
}

func (r *SlotRepository) ListAvailableByMentor(ctx context.Context, mentorID uuid.UUID, endingAfter time.Time) ([]domain.Slot, error) {
	query := `
	SELECT ` + slotColumns + `
	FROM availability_slots
	WHERE mentor_id = $1 AND status = 'AVAILABLE' AND end_datetime >= $2
	ORDER BY start_datetime
	`

	return r.list(ctx, query, mentorID, endingAfter)
}

// FindOverlapping returns the mentor's AVAILABLE or BOOKED slots intersecting
// the half-open window [start, end), ignoring excludeID.
func (r *SlotRepository) FindOverlapping(ctx context.Context, mentorID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]domain.Slot, error) {
	query := `
	SELECT ` + slotColumns + `
	FROM availability_slots
	WHERE mentor_id = $1
		AND status IN ('AVAILABLE', 'BOOKED')
		AND start_datetime < $3
		AND end_datetime > $2
		AND id <> $4
	`

	return r.list(ctx, query, mentorID, start, end, excludeID)
}

func (r *SlotRepository) list(ctx context.Context, query string, args ...any) ([]domain.Slot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	slots := []domain.Slot{}
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *slot)
	}

	return slots, rows.Err()
}

// LockSlot flips AVAILABLE to BOOKED. The status guard in the WHERE clause
// makes a concurrent lock lose with zero rows affected.
func (r *SlotRepository) LockSlot(ctx context.Context, slotID uuid.UUID) error {
	query := `
	UPDATE availability_slots
	SET status = $1,
		updated_at = $2
	WHERE id = $3 AND status = 'AVAILABLE'
	`

	result, err := r.db.ExecContext(ctx, query, domain.SlotBooked, time.Now(), slotID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrSlotUnavailable)
}

// UnlockSlot is a no-op unless the slot is currently BOOKED.
func (r *SlotRepository) UnlockSlot(ctx context.Context, slotID uuid.UUID) error {
	query := `
	UPDATE availability_slots
	SET status = 'AVAILABLE',
		updated_at = $1
	WHERE id = $2 AND status = 'BOOKED'
	`

	_, err := r.db.ExecContext(ctx, query, time.Now(), slotID)

	return err
}

func (r *SlotRepository) SetStatus(ctx context.Context, slotID uuid.UUID, status domain.SlotStatus) error {
	query := `UPDATE availability_slots SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), slotID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrSlotNotFound)
}

func expectRow(result sql.Result, none error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return none
	}

	return nil
}
