package playerstats

import "fmt"

// MatchStats is one player's statistical line for one match. The
// (PlayerID, MatchID) pair is logically unique.
type MatchStats struct {
	ID              int64
	PlayerID        int64
	MatchID         int64
	MinutesPlayed   int
	Goals           int
	Assists         int
	Rating          float64
	Shots           int
	ShotsOnTarget   int
	PassesCompleted int
	PassesAttempted int
	Tackles         int
	Interceptions   int
	YellowCards     int
	RedCards        int
	FoulsCommitted  int
	FoulsWon        int
	WasStarter      bool
}

func (s MatchStats) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("stats player id is required")
	}
	if s.MatchID <= 0 {
		return fmt.Errorf("stats match id is required")
	}
	if s.MinutesPlayed < 0 {
		return fmt.Errorf("minutes played cannot be negative")
	}
	return nil
}

// ScorerTotal is an aggregate row: one player's summed goals.
type ScorerTotal struct {
	PlayerID   int64
	TotalGoals int
}

// RatingAverage is an aggregate row: one player's average rating across
// matches with recorded minutes.
type RatingAverage struct {
	PlayerID  int64
	AvgRating float64
}
