package models

import (
	"time"
)

// Role enum
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDentist   Role = "dentist"
	RoleAssistant Role = "assistant"
)

// User represents the signed-in staff member. At most one user record is
// persisted at a time; its absence means logged out.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
