package models

import "time"

// Admin represents an admin account. Admins are never hard-deleted; the
// is_active flag marks disabled accounts.
type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never expose
	FullName     *string   `json:"full_name"`
	Email        *string   `json:"email"`
	IsActive     bool      `json:"is_active"`
	IsSuperAdmin bool      `json:"is_super_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor identifies the authenticated admin performing a mutation, used for
// updated_by stamps and audit entries.
type Actor struct {
	ID       int
	Username string
	IP       string
}
