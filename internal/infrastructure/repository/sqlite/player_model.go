package sqlite

import (
	"database/sql"

	"github.com/futclub/clubmanager/internal/domain/player"
)

type playerTableModel struct {
	ID            int64          `db:"id"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	DateOfBirth   sql.NullString `db:"date_of_birth"`
	Position      string         `db:"position"`
	ShirtNumber   int            `db:"shirt_number"`
	Status        string         `db:"status"`
	OverallRating int            `db:"overall_rating"`
	FitnessLevel  int            `db:"fitness_level"`
	InjuryDetails sql.NullString `db:"injury_details"`
	JoinedDate    sql.NullString `db:"joined_date"`
	ContractEnd   sql.NullString `db:"contract_end"`
	Nationality   sql.NullString `db:"nationality"`
	HeightCm      sql.NullInt64  `db:"height_cm"`
	WeightKg      sql.NullInt64  `db:"weight_kg"`
	PreferredFoot sql.NullString `db:"preferred_foot"`
}

func (m playerTableModel) toDomain() (player.Player, error) {
	dateOfBirth, err := parseRequiredTemporal("date_of_birth", m.DateOfBirth)
	if err != nil {
		return player.Player{}, err
	}
	joinedDate, err := parseNullableTemporal("joined_date", m.JoinedDate)
	if err != nil {
		return player.Player{}, err
	}
	contractEnd, err := parseNullableTemporal("contract_end", m.ContractEnd)
	if err != nil {
		return player.Player{}, err
	}

	return player.Player{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   dateOfBirth,
		Position:      player.Position(m.Position),
		ShirtNumber:   m.ShirtNumber,
		Status:        player.Status(m.Status),
		OverallRating: m.OverallRating,
		FitnessLevel:  m.FitnessLevel,
		InjuryDetails: nullStringToString(m.InjuryDetails),
		JoinedDate:    joinedDate,
		ContractEnd:   contractEnd,
		Nationality:   nullStringToString(m.Nationality),
		HeightCm:      nullInt64ToIntPtr(m.HeightCm),
		WeightKg:      nullInt64ToIntPtr(m.WeightKg),
		PreferredFoot: nullStringToString(m.PreferredFoot),
	}, nil
}

type playerInsertModel struct {
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	DateOfBirth   string         `db:"date_of_birth"`
	Position      string         `db:"position"`
	ShirtNumber   int            `db:"shirt_number"`
	Status        string         `db:"status"`
	OverallRating int            `db:"overall_rating"`
	FitnessLevel  int            `db:"fitness_level"`
	InjuryDetails sql.NullString `db:"injury_details"`
	JoinedDate    sql.NullString `db:"joined_date"`
	ContractEnd   sql.NullString `db:"contract_end"`
	Nationality   sql.NullString `db:"nationality"`
	HeightCm      sql.NullInt64  `db:"height_cm"`
	WeightKg      sql.NullInt64  `db:"weight_kg"`
	PreferredFoot sql.NullString `db:"preferred_foot"`
}

func playerToInsertModel(p player.Player) playerInsertModel {
	return playerInsertModel{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		DateOfBirth:   formatDate(p.DateOfBirth),
		Position:      string(p.Position),
		ShirtNumber:   p.ShirtNumber,
		Status:        string(p.Status),
		OverallRating: p.OverallRating,
		FitnessLevel:  p.FitnessLevel,
		InjuryDetails: stringToNullString(p.InjuryDetails),
		JoinedDate:    nullableDate(p.JoinedDate),
		ContractEnd:   nullableDate(p.ContractEnd),
		Nationality:   stringToNullString(p.Nationality),
		HeightCm:      intPtrToNullInt64(p.HeightCm),
		WeightKg:      intPtrToNullInt64(p.WeightKg),
		PreferredFoot: stringToNullString(p.PreferredFoot),
	}
}
