package sqlite

import (
	"database/sql"

	"github.com/futclub/clubmanager/internal/domain/match"
)

type matchTableModel struct {
	ID           int64          `db:"id"`
	MatchDate    sql.NullString `db:"match_date"`
	Opponent     string         `db:"opponent"`
	Venue        sql.NullString `db:"venue"`
	Competition  sql.NullString `db:"competition"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Status       string         `db:"status"`
	Attendance   sql.NullInt64  `db:"attendance"`
	Weather      sql.NullString `db:"weather"`
	Notes        sql.NullString `db:"notes"`
}

func (m matchTableModel) toDomain() (match.Match, error) {
	date, err := parseRequiredTemporal("match_date", m.MatchDate)
	if err != nil {
		return match.Match{}, err
	}

	return match.Match{
		ID:           m.ID,
		Date:         date,
		Opponent:     m.Opponent,
		Venue:        nullStringToString(m.Venue),
		Competition:  nullStringToString(m.Competition),
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
		Status:       match.Status(m.Status),
		Attendance:   nullInt64ToIntPtr(m.Attendance),
		Weather:      nullStringToString(m.Weather),
		Notes:        nullStringToString(m.Notes),
	}, nil
}

type matchInsertModel struct {
	MatchDate    string         `db:"match_date"`
	Opponent     string         `db:"opponent"`
	Venue        sql.NullString `db:"venue"`
	Competition  sql.NullString `db:"competition"`
	GoalsFor     int            `db:"goals_for"`
	GoalsAgainst int            `db:"goals_against"`
	Status       string         `db:"status"`
	Attendance   sql.NullInt64  `db:"attendance"`
	Weather      sql.NullString `db:"weather"`
	Notes        sql.NullString `db:"notes"`
}

func matchToInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		MatchDate:    formatDate(m.Date),
		Opponent:     m.Opponent,
		Venue:        stringToNullString(m.Venue),
		Competition:  stringToNullString(m.Competition),
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
		Status:       string(m.Status),
		Attendance:   intPtrToNullInt64(m.Attendance),
		Weather:      stringToNullString(m.Weather),
		Notes:        stringToNullString(m.Notes),
	}
}
