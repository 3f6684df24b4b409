package sqlite

import (
	"database/sql"

	"github.com/futclub/clubmanager/internal/domain/matchevent"
)

type matchEventTableModel struct {
	ID          int64          `db:"id"`
	MatchID     int64          `db:"match_id"`
	PlayerID    sql.NullInt64  `db:"player_id"`
	EventType   string         `db:"event_type"`
	Minute      int            `db:"minute"`
	Second      int            `db:"second"`
	Description sql.NullString `db:"description"`
	RecordedAt  sql.NullString `db:"recorded_at"`
}

func (m matchEventTableModel) toDomain() (matchevent.Event, error) {
	recordedAt, err := parseNullableTemporal("recorded_at", m.RecordedAt)
	if err != nil {
		return matchevent.Event{}, err
	}

	return matchevent.Event{
		ID:          m.ID,
		MatchID:     m.MatchID,
		PlayerID:    nullInt64ToInt64Ptr(m.PlayerID),
		Type:        matchevent.Type(m.EventType),
		Minute:      m.Minute,
		Second:      m.Second,
		Description: nullStringToString(m.Description),
		RecordedAt:  recordedAt,
	}, nil
}

type matchEventInsertModel struct {
	MatchID     int64          `db:"match_id"`
	PlayerID    sql.NullInt64  `db:"player_id"`
	EventType   string         `db:"event_type"`
	Minute      int            `db:"minute"`
	Second      int            `db:"second"`
	Description sql.NullString `db:"description"`
	RecordedAt  sql.NullString `db:"recorded_at"`
}

func matchEventToInsertModel(e matchevent.Event) matchEventInsertModel {
	return matchEventInsertModel{
		MatchID:     e.MatchID,
		PlayerID:    int64PtrToNullInt64(e.PlayerID),
		EventType:   string(e.Type),
		Minute:      e.Minute,
		Second:      e.Second,
		Description: stringToNullString(e.Description),
		RecordedAt:  nullableDateTime(e.RecordedAt),
	}
}
