package matchevent

import (
	"fmt"
	"time"
)

// Type categorises a timeline event within a match.
type Type string

const (
	TypeGoal         Type = "GOAL"
	TypeAssist       Type = "ASSIST"
	TypeYellowCard   Type = "YELLOW_CARD"
	TypeRedCard      Type = "RED_CARD"
	TypeSubstitution Type = "SUBSTITUTION"
	TypeInjury       Type = "INJURY"
)

var AllTypes = map[Type]struct{}{
	TypeGoal:         {},
	TypeAssist:       {},
	TypeYellowCard:   {},
	TypeRedCard:      {},
	TypeSubstitution: {},
	TypeInjury:       {},
}

// Event is a single entry on a match timeline, ordered by (Minute, Second).
// PlayerID is nil for events not attributed to a player.
type Event struct {
	ID          int64
	MatchID     int64
	PlayerID    *int64
	Type        Type
	Minute      int
	Second      int
	Description string
	RecordedAt  *time.Time
}

func (e Event) Validate() error {
	if e.MatchID <= 0 {
		return fmt.Errorf("event match id is required")
	}
	if _, ok := AllTypes[e.Type]; !ok {
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if e.Minute < 0 || e.Second < 0 || e.Second > 59 {
		return fmt.Errorf("invalid event clock %d:%02d", e.Minute, e.Second)
	}
	return nil
}
