package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

const reviewColumns = `id, booking_id, mentee_id, mentor_id, rating, comment, created_at`

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var rv domain.Review
	var comment sql.NullString

	err := row.Scan(&rv.ID, &rv.BookingID, &rv.MenteeID, &rv.MentorID, &rv.Rating, &comment, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		rv.Comment = &comment.String
	}

	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
	INSERT INTO reviews (` + reviewColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.BookingID, review.MenteeID, review.MentorID, review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		if mapped := mapUnique(err, constraintReviewPerBooking, domain.ErrReviewExists); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1`

	rv, err := scanReview(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrReviewNotFound)
	}
	return rv, nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`, bookingID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ReviewRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Review, error) {
	query := `
	SELECT ` + reviewColumns + `
	FROM reviews
	WHERE mentor_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}

	return reviews, rows.Err()
}

func (r *ReviewRepository) StatsForMentor(ctx context.Context, mentorID uuid.UUID) (domain.RatingStats, error) {
	query := `SELECT COALESCE(SUM(rating), 0), COUNT(*) FROM reviews WHERE mentor_id = $1`

	var st domain.RatingStats
	if err := r.db.QueryRowContext(ctx, query, mentorID).Scan(&st.Sum, &st.Count); err != nil {
		return domain.RatingStats{}, err
	}
	return st, nil
}
