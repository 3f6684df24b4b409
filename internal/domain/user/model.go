package user

import (
	"fmt"
	"time"
)

// Role gates which club operations an account may perform.
type Role string

const (
	RoleCoach         Role = "COACH"
	RoleAnalyst       Role = "ANALYST"
	RoleAdministrator Role = "ADMINISTRATOR"
)

var AllRoles = map[Role]struct{}{
	RoleCoach:         {},
	RoleAnalyst:       {},
	RoleAdministrator: {},
}

// User is a club account. PasswordHash stores a bcrypt digest, never the
// plain password.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

func (u User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

func (u User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if _, ok := AllRoles[u.Role]; !ok {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	return nil
}
