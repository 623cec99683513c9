package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/serdarsalim/timespent-sub000/internal/models"
)

// ProfileRepository persists per-user settings.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs a profile repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUser returns the user's profile, or a default profile when none
// has been saved yet.
func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (*models.Profile, error) {
	const query = `SELECT user_id, display_name, week_start_day, birth_date, retention_days, updated_at
FROM profiles WHERE user_id = $1 LIMIT 1`
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Profile{UserID: userID, WeekStartDay: 1, RetentionDays: 400}, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Upsert writes the profile, inserting on first save.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO profiles (user_id, display_name, week_start_day, birth_date, retention_days, updated_at)
VALUES (:user_id, :display_name, :week_start_day, :birth_date, :retention_days, :updated_at)
ON CONFLICT (user_id) DO UPDATE SET
	display_name = EXCLUDED.display_name,
	week_start_day = EXCLUDED.week_start_day,
	birth_date = EXCLUDED.birth_date,
	retention_days = EXCLUDED.retention_days,
	updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
