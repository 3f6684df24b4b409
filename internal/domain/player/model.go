package player

import (
	"fmt"
	"time"
)

// Position represents the squad position categories used by the club.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Status tracks a player's availability for selection.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusInjured   Status = "INJURED"
	StatusSuspended Status = "SUSPENDED"
	StatusOnLoan    Status = "ON_LOAN"
)

var AllStatuses = map[Status]struct{}{
	StatusAvailable: {},
	StatusInjured:   {},
	StatusSuspended: {},
	StatusOnLoan:    {},
}

// Player is a registered squad member. Shirt numbers are unique across the squad.
type Player struct {
	ID            int64
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	Position      Position
	ShirtNumber   int
	Status        Status
	OverallRating int
	FitnessLevel  int
	InjuryDetails string
	JoinedDate    *time.Time
	ContractEnd   *time.Time
	Nationality   string
	HeightCm      *int
	WeightKg      *int
	PreferredFoot string
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}
	if p.ShirtNumber <= 0 {
		return fmt.Errorf("shirt number must be greater than zero")
	}
	return nil
}
