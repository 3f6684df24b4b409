package sqlite

import (
	"database/sql"

	"github.com/futclub/clubmanager/internal/domain/training"
)

type sessionTableModel struct {
	ID              int64          `db:"id"`
	SessionDate     sql.NullString `db:"session_date"`
	Focus           string         `db:"focus"`
	Location        sql.NullString `db:"location"`
	DurationMinutes int            `db:"duration_minutes"`
	Intensity       string         `db:"intensity"`
	CoachID         int64          `db:"coach_id"`
	Notes           sql.NullString `db:"notes"`
}

func (m sessionTableModel) toDomain() (training.Session, error) {
	date, err := parseRequiredTemporal("session_date", m.SessionDate)
	if err != nil {
		return training.Session{}, err
	}

	return training.Session{
		ID:              m.ID,
		Date:            date,
		Focus:           m.Focus,
		Location:        nullStringToString(m.Location),
		DurationMinutes: m.DurationMinutes,
		Intensity:       training.Intensity(m.Intensity),
		CoachID:         m.CoachID,
		Notes:           nullStringToString(m.Notes),
	}, nil
}

type sessionInsertModel struct {
	SessionDate     string         `db:"session_date"`
	Focus           string         `db:"focus"`
	Location        sql.NullString `db:"location"`
	DurationMinutes int            `db:"duration_minutes"`
	Intensity       string         `db:"intensity"`
	CoachID         int64          `db:"coach_id"`
	Notes           sql.NullString `db:"notes"`
}

func sessionToInsertModel(s training.Session) sessionInsertModel {
	return sessionInsertModel{
		SessionDate:     formatDate(s.Date),
		Focus:           s.Focus,
		Location:        stringToNullString(s.Location),
		DurationMinutes: s.DurationMinutes,
		Intensity:       string(s.Intensity),
		CoachID:         s.CoachID,
		Notes:           stringToNullString(s.Notes),
	}
}

type attendanceTableModel struct {
	ID         int64          `db:"id"`
	PlayerID   int64          `db:"player_id"`
	SessionID  int64          `db:"session_id"`
	Status     string         `db:"status"`
	Notes      sql.NullString `db:"notes"`
	RecordedAt sql.NullString `db:"recorded_at"`
}

func (m attendanceTableModel) toDomain() (training.AttendanceRecord, error) {
	recordedAt, err := parseNullableTemporal("recorded_at", m.RecordedAt)
	if err != nil {
		return training.AttendanceRecord{}, err
	}

	return training.AttendanceRecord{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		SessionID:  m.SessionID,
		Status:     training.AttendanceStatus(m.Status),
		Notes:      nullStringToString(m.Notes),
		RecordedAt: recordedAt,
	}, nil
}

type attendanceInsertModel struct {
	PlayerID   int64          `db:"player_id"`
	SessionID  int64          `db:"session_id"`
	Status     string         `db:"status"`
	Notes      sql.NullString `db:"notes"`
	RecordedAt sql.NullString `db:"recorded_at"`
}

func attendanceToInsertModel(r training.AttendanceRecord) attendanceInsertModel {
	return attendanceInsertModel{
		PlayerID:   r.PlayerID,
		SessionID:  r.SessionID,
		Status:     string(r.Status),
		Notes:      stringToNullString(r.Notes),
		RecordedAt: nullableDateTime(r.RecordedAt),
	}
}
