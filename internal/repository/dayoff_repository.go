package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// DayOffRepository persists the days excluded from productivity stats.
type DayOffRepository struct {
	db *sqlx.DB
}

// NewDayOffRepository constructs a day-off repository.
func NewDayOffRepository(db *sqlx.DB) *DayOffRepository {
	return &DayOffRepository{db: db}
}

// ListByUser returns the user's day-offs in day-key order.
func (r *DayOffRepository) ListByUser(ctx context.Context, userID string) ([]models.DayOff, error) {
	const query = `SELECT id, user_id, day_key, reason, created_at
FROM day_offs WHERE user_id = $1 ORDER BY day_key`
	var days []models.DayOff
	if err := r.db.SelectContext(ctx, &days, query, userID); err != nil {
		return nil, fmt.Errorf("list day offs: %w", err)
	}
	return days, nil
}

// ReplaceForUser swaps the user's day-off collection.
func (r *DayOffRepository) ReplaceForUser(ctx context.Context, userID string, days []models.DayOff) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace day offs: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM day_offs WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear day offs: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO day_offs (id, user_id, day_key, reason, created_at)
VALUES (:id, :user_id, :day_key, :reason, :created_at)`
	for i := range days {
		day := days[i]
		if day.ID == "" {
			day.ID = uuid.NewString()
		}
		day.UserID = userID
		if day.CreatedAt.IsZero() {
			day.CreatedAt = now
		}
		if _, err := tx.NamedExecContext(ctx, insert, day); err != nil {
			return fmt.Errorf("insert day off: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace day offs: %w", err)
	}
	return nil
}
