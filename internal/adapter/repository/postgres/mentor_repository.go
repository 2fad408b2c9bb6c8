package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

type MentorRepository struct {
	db DBTX
}

func NewMentorRepository(db DBTX) *MentorRepository {
	return &MentorRepository{db: db}
}

func (r *MentorRepository) GetByID(ctx context.Context, mentorID uuid.UUID) (*domain.Mentor, error) {
	query := `SELECT id, user_id, average_rating, total_reviews FROM mentors WHERE id = $1`

	var m domain.Mentor
	err := r.db.QueryRowContext(ctx, query, mentorID).Scan(&m.ID, &m.UserID, &m.AverageRating, &m.TotalReviews)
	if err != nil {
		return nil, mapNoRows(err, domain.ErrMentorNotFound)
	}
	return &m, nil
}

// LockForUpdate takes the mentor row lock used to serialize slot overlap
// checks and rating recomputation.
func (r *MentorRepository) LockForUpdate(ctx context.Context, mentorID uuid.UUID) error {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `SELECT id FROM mentors WHERE id = $1 FOR UPDATE`, mentorID).Scan(&id)
	return mapNoRows(err, domain.ErrMentorNotFound)
}

func (r *MentorRepository) UpdateRating(ctx context.Context, mentorID uuid.UUID, average float64, total int) error {
	query := `
	UPDATE mentors
	SET average_rating = $1, total_reviews = $2
	WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, average, total, mentorID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrMentorNotFound)
}

func (r *MentorRepository) MentorIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	return r.profileID(ctx, `SELECT id FROM mentors WHERE user_id = $1`, userID)
}

func (r *MentorRepository) MenteeIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	return r.profileID(ctx, `SELECT id FROM mentees WHERE user_id = $1`, userID)
}

func (r *MentorRepository) profileID(ctx context.Context, query string, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&id); err != nil {
		return uuid.Nil, mapNoRows(err, domain.ErrProfileNotFound)
	}
	return id, nil
}
