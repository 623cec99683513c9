package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// RatingRepository persists per-day productivity scores.
type RatingRepository struct {
	db *sqlx.DB
}

// NewRatingRepository constructs a rating repository.
func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// ListByUser returns the user's ratings in day-key order.
func (r *RatingRepository) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	const query = `SELECT id, user_id, day_key, score, note, created_at, updated_at
FROM ratings WHERE user_id = $1 ORDER BY day_key`
	var ratings []models.Rating
	if err := r.db.SelectContext(ctx, &ratings, query, userID); err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// ReplaceForUser swaps the user's rating collection.
func (r *RatingRepository) ReplaceForUser(ctx context.Context, userID string, ratings []models.Rating) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace ratings: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM ratings WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear ratings: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO ratings (id, user_id, day_key, score, note, created_at, updated_at)
VALUES (:id, :user_id, :day_key, :score, :note, :created_at, :updated_at)`
	for i := range ratings {
		rating := ratings[i]
		if rating.ID == "" {
			rating.ID = uuid.NewString()
		}
		rating.UserID = userID
		if rating.CreatedAt.IsZero() {
			rating.CreatedAt = now
		}
		rating.UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insert, rating); err != nil {
			return fmt.Errorf("insert rating: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace ratings: %w", err)
	}
	return nil
}
