package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// ScheduleRepository persists the flattened schedule rows of a user.
// Saves are whole-collection replacements: the UI always submits the
// full store, so a save deletes the user's rows and recreates them in
// one transaction. Last writer wins, no merge.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, user_id, day_key, position, start_time, end_time, title, color,
repeat, repeat_until, repeat_days, skip_dates, created_at, updated_at`

// ListByUser returns every schedule row of a user, day buckets in key
// order and entries in stored position order.
func (r *ScheduleRepository) ListByUser(ctx context.Context, userID string) ([]models.ScheduleRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedule_entries WHERE user_id = $1 ORDER BY day_key, position`, scheduleColumns)
	var rows []models.ScheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list schedule rows: %w", err)
	}
	return rows, nil
}

// ReplaceForUser swaps the user's entire schedule collection.
func (r *ScheduleRepository) ReplaceForUser(ctx context.Context, userID string, rows []models.ScheduleRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace schedule: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM schedule_entries WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear schedule rows: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO schedule_entries (id, user_id, day_key, position, start_time, end_time, title, color, repeat, repeat_until, repeat_days, skip_dates, created_at, updated_at)
VALUES (:id, :user_id, :day_key, :position, :start_time, :end_time, :title, :color, :repeat, :repeat_until, :repeat_days, :skip_dates, :created_at, :updated_at)`
	for i := range rows {
		row := rows[i]
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		row.UserID = userID
		if row.CreatedAt.IsZero() {
			row.CreatedAt = now
		}
		row.UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return fmt.Errorf("insert schedule row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace schedule: %w", err)
	}
	return nil
}
