package staff

import (
	"fmt"
	"time"
)

// Staff is a club employee linked to exactly one user account.
type Staff struct {
	ID       int64
	FullName string
	UserID   int64
	Email    string
	Phone    string
	HireDate *time.Time
}

func (s Staff) Validate() error {
	if s.FullName == "" {
		return fmt.Errorf("staff full name is required")
	}
	if s.UserID <= 0 {
		return fmt.Errorf("staff user id is required")
	}
	return nil
}
