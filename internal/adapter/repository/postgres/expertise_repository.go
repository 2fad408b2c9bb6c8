package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

const expertiseColumns = `id, mentor_id, topic_id, price, duration_minutes, description, is_active, created_at, updated_at`

type ExpertiseRepository struct {
	db DBTX
}

func NewExpertiseRepository(db DBTX) *ExpertiseRepository {
	return &ExpertiseRepository{db: db}
}

func scanExpertise(row rowScanner) (*domain.Expertise, error) {
	var e domain.Expertise
	var description sql.NullString

	err := row.Scan(
		&e.ID,
		&e.MentorID,
		&e.TopicID,
		&e.Price,
		&e.DurationMinutes,
		&description,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		e.Description = &description.String
	}

	return &e, nil
}

func (r *ExpertiseRepository) Create(ctx context.Context, e *domain.Expertise) error {
	query := `
	INSERT INTO mentor_expertise (` + expertiseColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.MentorID, e.TopicID, e.Price, e.DurationMinutes, e.Description, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUnique(err, constraintExpertisePerTopic, domain.ErrExpertiseExists); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert expertise: %w", err)
	}

	return nil
}

func (r *ExpertiseRepository) Update(ctx context.Context, e *domain.Expertise) error {
	query := `
	UPDATE mentor_expertise
	SET topic_id = $1,
		price = $2,
		duration_minutes = $3,
		description = $4,
		is_active = $5,
		updated_at = $6
	WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query, e.TopicID, e.Price, e.DurationMinutes, e.Description, e.IsActive, e.UpdatedAt, e.ID)
	if err != nil {
		return mapUnique(err, constraintExpertisePerTopic, domain.ErrExpertiseExists)
	}

	return expectRow(result, domain.ErrExpertiseNotFound)
}

func (r *ExpertiseRepository) GetByID(ctx context.Context, expertiseID uuid.UUID) (*domain.Expertise, error) {
	query := `SELECT ` + expertiseColumns + ` FROM mentor_expertise WHERE id = $1`

	e, err := scanExpertise(r.db.QueryRowContext(ctx, query, expertiseID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrExpertiseNotFound)
	}
	return e, nil
}

// FindByMentorAndTopic also returns inactive rows so a deleted offer can be revived.
func (r *ExpertiseRepository) FindByMentorAndTopic(ctx context.Context, mentorID, topicID uuid.UUID) (*domain.Expertise, error) {
	query := `SELECT ` + expertiseColumns + ` FROM mentor_expertise WHERE mentor_id = $1 AND topic_id = $2`

	e, err := scanExpertise(r.db.QueryRowContext(ctx, query, mentorID, topicID))
	if err != nil {
		return nil, mapNoRows(err, domain.ErrExpertiseNotFound)
	}
	return e, nil
}

func (r *ExpertiseRepository) Deactivate(ctx context.Context, expertiseID uuid.UUID) error {
	query := `UPDATE mentor_expertise SET is_active = FALSE, updated_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now(), expertiseID)
	if err != nil {
		return err
	}

	return expectRow(result, domain.ErrExpertiseNotFound)
}

func (r *ExpertiseRepository) ListActiveByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.Expertise, error) {
	query := `
	SELECT ` + expertiseColumns + `
	FROM mentor_expertise
	WHERE mentor_id = $1 AND is_active
	ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, mentorID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	list := []domain.Expertise{}
	for rows.Next() {
		e, err := scanExpertise(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}

	return list, rows.Err()
}

func (r *ExpertiseRepository) TopicExists(ctx context.Context, topicID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM topics WHERE id = $1)`, topicID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
