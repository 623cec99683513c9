package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// NoteRepository persists weekly and monthly journal notes.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository constructs a note repository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// ListWeeklyByUser returns the user's weekly notes in week-key order.
func (r *NoteRepository) ListWeeklyByUser(ctx context.Context, userID string) ([]models.WeeklyNote, error) {
	const query = `SELECT id, user_id, week_key, body, created_at, updated_at
FROM weekly_notes WHERE user_id = $1 ORDER BY week_key`
	var notes []models.WeeklyNote
	if err := r.db.SelectContext(ctx, &notes, query, userID); err != nil {
		return nil, fmt.Errorf("list weekly notes: %w", err)
	}
	return notes, nil
}

// ReplaceWeeklyForUser swaps the user's weekly note collection.
func (r *NoteRepository) ReplaceWeeklyForUser(ctx context.Context, userID string, notes []models.WeeklyNote) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace weekly notes: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM weekly_notes WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear weekly notes: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO weekly_notes (id, user_id, week_key, body, created_at, updated_at)
VALUES (:id, :user_id, :week_key, :body, :created_at, :updated_at)`
	for i := range notes {
		note := notes[i]
		if note.ID == "" {
			note.ID = uuid.NewString()
		}
		note.UserID = userID
		if note.CreatedAt.IsZero() {
			note.CreatedAt = now
		}
		note.UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insert, note); err != nil {
			return fmt.Errorf("insert weekly note: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace weekly notes: %w", err)
	}
	return nil
}

// ListMonthByUser returns the user's month notes in month-key order.
func (r *NoteRepository) ListMonthByUser(ctx context.Context, userID string) ([]models.MonthNote, error) {
	const query = `SELECT id, user_id, month_key, body, created_at, updated_at
FROM month_notes WHERE user_id = $1 ORDER BY month_key`
	var notes []models.MonthNote
	if err := r.db.SelectContext(ctx, &notes, query, userID); err != nil {
		return nil, fmt.Errorf("list month notes: %w", err)
	}
	return notes, nil
}

// ReplaceMonthForUser swaps the user's month note collection.
func (r *NoteRepository) ReplaceMonthForUser(ctx context.Context, userID string, notes []models.MonthNote) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace month notes: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM month_notes WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear month notes: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO month_notes (id, user_id, month_key, body, created_at, updated_at)
VALUES (:id, :user_id, :month_key, :body, :created_at, :updated_at)`
	for i := range notes {
		note := notes[i]
		if note.ID == "" {
			note.ID = uuid.NewString()
		}
		note.UserID = userID
		if note.CreatedAt.IsZero() {
			note.CreatedAt = now
		}
		note.UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, insert, note); err != nil {
			return fmt.Errorf("insert month note: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace month notes: %w", err)
	}
	return nil
}
