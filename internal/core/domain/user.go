// internal/core/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role of a user
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User is an account allowed to use the tracker.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PendingUser is an access request awaiting approval.
type PendingUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	RequestedAt time.Time `json:"requested_at"`
}

// TestAccount is a fixed account seeded outside production.
type TestAccount struct {
	Email    string
	Name     string
	Role     Role
	Password string
}

// TestAccounts returns the two fixed non-production accounts.
func TestAccounts() []TestAccount {
	return []TestAccount{
		{Email: "admin@stowage.test", Name: "Test Admin", Role: RoleAdmin, Password: "stowage-admin-password"},
		{Email: "member@stowage.test", Name: "Test Member", Role: RoleMember, Password: "stowage-member-password"},
	}
}
