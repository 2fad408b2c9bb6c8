package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/ports"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// either in autocommit mode or inside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Repositories returns autocommit repositories for reads and single writes.
func (s *Store) Repositories() ports.Repositories {
	return newRepositories(s.db)
}

func newRepositories(db DBTX) ports.Repositories {
	return ports.Repositories{
		Slots:       NewSlotRepository(db),
		Bookings:    NewBookingRepository(db),
		Reschedules: NewRescheduleRepository(db),
		Reviews:     NewReviewRepository(db),
		Expertise:   NewExpertiseRepository(db),
		Mentors:     NewMentorRepository(db),
	}
}

// Do runs fn in one transaction. Any error from fn, or a panic, rolls back.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

var _ ports.UnitOfWork = (*Store)(nil)
