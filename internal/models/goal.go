package models

import "time"

// Goal is a long-running objective with measurable key results.
type Goal struct {
	ID         string      `db:"id" json:"id"`
	UserID     string      `db:"user_id" json:"-"`
	Position   int         `db:"position" json:"position"`
	Title      string      `db:"title" json:"title"`
	Notes      string      `db:"notes" json:"notes,omitempty"`
	Color      string      `db:"color" json:"color,omitempty"`
	TargetDate *string     `db:"target_date" json:"target_date,omitempty"`
	Done       bool        `db:"done" json:"done"`
	KeyResults []KeyResult `db:"-" json:"key_results,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"-"`
	UpdatedAt  time.Time   `db:"updated_at" json:"-"`
}

// KeyResult tracks progress toward a goal.
type KeyResult struct {
	ID       string  `db:"id" json:"id"`
	GoalID   string  `db:"goal_id" json:"-"`
	Position int     `db:"position" json:"position"`
	Title    string  `db:"title" json:"title"`
	Target   float64 `db:"target" json:"target"`
	Current  float64 `db:"current" json:"current"`
	Unit     string  `db:"unit" json:"unit,omitempty"`
	Done     bool    `db:"done" json:"done"`
}
