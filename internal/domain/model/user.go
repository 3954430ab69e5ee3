package model

import "time"

// UserRole separates organization staff from buyers in the dashboard.
type UserRole string

const (
	UserRoleOrganization UserRole = "organization"
	UserRoleBuyer        UserRole = "buyer"
)

// User is a dashboard account. Credential policy lives outside the workflow
// core; the core only consumes the resolved identity.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         UserRole
	DisplayName  string
	CreatedAt    time.Time
}
