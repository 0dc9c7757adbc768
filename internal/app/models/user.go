package models

import (
	"time"
)

// Role represents a user's access level
type Role string

const (
	// RoleUser is the default role assigned on registration
	RoleUser Role = "user"
	// RoleAdmin grants access to all content management operations
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`                 // Unique identifier for the user
	Name      string    `json:"name" db:"name"`             // User's display name
	Email     string    `json:"email" db:"email"`           // User's email address (unique)
	Password  string    `json:"-" db:"password"`            // User's hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role"`             // User's role (user or admin)
	CreatedAt time.Time `json:"createdAt" db:"created_at"`  // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`  // Timestamp when the user was last updated
}
