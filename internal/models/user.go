package models

import "time"

// UserRole distinguishes full accounts from ephemeral guest sessions.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleGuest UserRole = "GUEST"
)

// User represents an account created through the OAuth provider.
type User struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Provider  string     `db:"provider" json:"provider"`
	Subject   string     `db:"subject" json:"-"`
	Name      string     `db:"name" json:"name"`
	AvatarURL string     `db:"avatar_url" json:"avatar_url,omitempty"`
	LastLogin *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Profile holds per-user presentation settings.
type Profile struct {
	UserID        string    `db:"user_id" json:"-"`
	DisplayName   string    `db:"display_name" json:"display_name"`
	WeekStartDay  int       `db:"week_start_day" json:"week_start_day"`
	BirthDate     *string   `db:"birth_date" json:"birth_date,omitempty"`
	RetentionDays int       `db:"retention_days" json:"retention_days"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
