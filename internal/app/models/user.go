package models

import (
	"time"
)

// User is a row of the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"alice"`
	Password  string    `json:"-" db:"password"` // "hash.salt", never serialized
	Role      RoleType  `json:"role" db:"role" example:"student"`
	Name      string    `json:"name" db:"name" example:"Alice Johnson"`
	Email     string    `json:"email" db:"email" example:"alice@college.edu"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// HasRole reports whether the user has any of roles
func (u *User) HasRole(roles ...RoleType) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
