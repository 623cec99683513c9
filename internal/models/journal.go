package models

import "time"

// Rating is a per-day productivity self-score.
type Rating struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	DayKey    string    `db:"day_key" json:"dayKey"`
	Score     int       `db:"score" json:"score"`
	Note      string    `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// WeeklyNote is journal text keyed by an ISO week value ("2024-W11").
type WeeklyNote struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	WeekKey   string    `db:"week_key" json:"weekKey"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// MonthNote is journal text keyed by "{year}-{month}".
type MonthNote struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	MonthKey  string    `db:"month_key" json:"monthKey"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// FocusArea is a time-allocation pill shown on the dashboard.
type FocusArea struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	Position    int       `db:"position" json:"position"`
	Label       string    `db:"label" json:"label"`
	Color       string    `db:"color" json:"color,omitempty"`
	WeeklyHours float64   `db:"weekly_hours" json:"weekly_hours"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// DayOff marks a day excluded from productivity statistics.
type DayOff struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	DayKey    string    `db:"day_key" json:"dayKey"`
	Reason    string    `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
