package match

import (
	"fmt"
	"time"
)

// Status tracks the lifecycle of a fixture.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusCompleted: {},
}

// Match is a fixture against an opponent, home or away.
type Match struct {
	ID           int64
	Date         time.Time
	Opponent     string
	Venue        string
	Competition  string
	GoalsFor     int
	GoalsAgainst int
	Status       Status
	Attendance   *int
	Weather      string
	Notes        string
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("match opponent is required")
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}
	return nil
}
