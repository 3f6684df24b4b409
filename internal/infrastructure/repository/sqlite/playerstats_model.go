package sqlite

import "github.com/futclub/clubmanager/internal/domain/playerstats"

type statsTableModel struct {
	ID              int64   `db:"id"`
	PlayerID        int64   `db:"player_id"`
	MatchID         int64   `db:"match_id"`
	MinutesPlayed   int     `db:"minutes_played"`
	Goals           int     `db:"goals"`
	Assists         int     `db:"assists"`
	Rating          float64 `db:"rating"`
	Shots           int     `db:"shots"`
	ShotsOnTarget   int     `db:"shots_on_target"`
	PassesCompleted int     `db:"passes_completed"`
	PassesAttempted int     `db:"passes_attempted"`
	Tackles         int     `db:"tackles"`
	Interceptions   int     `db:"interceptions"`
	YellowCards     int     `db:"yellow_cards"`
	RedCards        int     `db:"red_cards"`
	FoulsCommitted  int     `db:"fouls_committed"`
	FoulsWon        int     `db:"fouls_won"`
	WasStarter      bool    `db:"was_starter"`
}

func (m statsTableModel) toDomain() playerstats.MatchStats {
	return playerstats.MatchStats{
		ID:              m.ID,
		PlayerID:        m.PlayerID,
		MatchID:         m.MatchID,
		MinutesPlayed:   m.MinutesPlayed,
		Goals:           m.Goals,
		Assists:         m.Assists,
		Rating:          m.Rating,
		Shots:           m.Shots,
		ShotsOnTarget:   m.ShotsOnTarget,
		PassesCompleted: m.PassesCompleted,
		PassesAttempted: m.PassesAttempted,
		Tackles:         m.Tackles,
		Interceptions:   m.Interceptions,
		YellowCards:     m.YellowCards,
		RedCards:        m.RedCards,
		FoulsCommitted:  m.FoulsCommitted,
		FoulsWon:        m.FoulsWon,
		WasStarter:      m.WasStarter,
	}
}

type statsInsertModel struct {
	PlayerID        int64   `db:"player_id"`
	MatchID         int64   `db:"match_id"`
	MinutesPlayed   int     `db:"minutes_played"`
	Goals           int     `db:"goals"`
	Assists         int     `db:"assists"`
	Rating          float64 `db:"rating"`
	Shots           int     `db:"shots"`
	ShotsOnTarget   int     `db:"shots_on_target"`
	PassesCompleted int     `db:"passes_completed"`
	PassesAttempted int     `db:"passes_attempted"`
	Tackles         int     `db:"tackles"`
	Interceptions   int     `db:"interceptions"`
	YellowCards     int     `db:"yellow_cards"`
	RedCards        int     `db:"red_cards"`
	FoulsCommitted  int     `db:"fouls_committed"`
	FoulsWon        int     `db:"fouls_won"`
	WasStarter      bool    `db:"was_starter"`
}

func statsToInsertModel(s playerstats.MatchStats) statsInsertModel {
	return statsInsertModel{
		PlayerID:        s.PlayerID,
		MatchID:         s.MatchID,
		MinutesPlayed:   s.MinutesPlayed,
		Goals:           s.Goals,
		Assists:         s.Assists,
		Rating:          s.Rating,
		Shots:           s.Shots,
		ShotsOnTarget:   s.ShotsOnTarget,
		PassesCompleted: s.PassesCompleted,
		PassesAttempted: s.PassesAttempted,
		Tackles:         s.Tackles,
		Interceptions:   s.Interceptions,
		YellowCards:     s.YellowCards,
		RedCards:        s.RedCards,
		FoulsCommitted:  s.FoulsCommitted,
		FoulsWon:        s.FoulsWon,
		WasStarter:      s.WasStarter,
	}
}
