package service

import "github.com/serdarsalim/timespent-sub000/internal/models"

// Principal identifies the caller of a service operation. For guest
// sessions ID is the ephemeral workspace ID, not a users row.
type Principal struct {
	ID   string
	Role models.UserRole
}

// Guest reports whether the caller holds a guest session.
func (p Principal) Guest() bool {
	return p.Role == models.RoleGuest
}
