package models

import "time"

// ScheduleRow is the stored form of one schedule entry. The day key is
// an explicit column; repeat_days and skip_dates carry JSON-encoded
// strings ("" when empty).
type ScheduleRow struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	DayKey      string    `db:"day_key" json:"dayKey"`
	Position    int       `db:"position" json:"position"`
	Time        string    `db:"start_time" json:"time"`
	EndTime     string    `db:"end_time" json:"endTime,omitempty"`
	Title       string    `db:"title" json:"title"`
	Color       string    `db:"color" json:"color,omitempty"`
	Repeat      string    `db:"repeat" json:"repeat,omitempty"`
	RepeatUntil string    `db:"repeat_until" json:"repeatUntil,omitempty"`
	RepeatDays  string    `db:"repeat_days" json:"repeatDays,omitempty"`
	SkipDates   string    `db:"skip_dates" json:"skipDates,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}
