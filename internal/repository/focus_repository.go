package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// FocusRepository persists focus-area pills.
type FocusRepository struct {
	db *sqlx.DB
}

// NewFocusRepository constructs a focus-area repository.
func NewFocusRepository(db *sqlx.DB) *FocusRepository {
	return &FocusRepository{db: db}
}

// ListByUser returns the user's focus areas in display order.
func (r *FocusRepository) ListByUser(ctx context.Context, userID string) ([]models.FocusArea, error) {
	const query = `SELECT id, user_id, position, label, color, weekly_hours, created_at, updated_at
FROM focus_areas WHERE user_id = $1 ORDER BY position`
	var areas []models.FocusArea
	if err := r.db.SelectContext(ctx, &areas, query, userID); err != nil {
		return nil, fmt.Errorf("list focus areas: %w", err)
	}
	return areas, nil
}

// ReplaceForUser swaps the user's focus-area collection.
func (r *FocusRepository) ReplaceForUser(ctx context.Context, userID string, areas []models.FocusArea) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace focus areas: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM focus_areas WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear focus areas: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO focus_areas (id, user_id, position, label, color, weekly_hours, created_at, updated_at)
VALUES (:id, :user_id, :position, :label, :color, :weekly_hours, :created_at, :updated_at)`
	for i := range areas {
		area := areas[i]
		if area.ID == "" {
			area.ID = uuid.NewString()
		}
		area.UserID = userID
		area.Position = i
		if area.CreatedAt.IsZero() {
			area.CreatedAt = now
		}
		area.UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insert, area); err != nil {
			return fmt.Errorf("insert focus area: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace focus areas: %w", err)
	}
	return nil
}
