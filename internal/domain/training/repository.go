package training

import (
	"context"
	"time"
)

// SessionRepository describes training session persistence needs from use cases.
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (Session, bool, error)
	List(ctx context.Context) ([]Session, error)
	ListByCoach(ctx context.Context, coachID int64) ([]Session, error)
	ListInDateRange(ctx context.Context, start, end time.Time) ([]Session, error)
	ListRecent(ctx context.Context, limit int) ([]Session, error)
	Insert(ctx context.Context, s *Session) error
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, id int64) error
}

// AttendanceRepository describes attendance persistence needs from use cases.
// Upsert finds an existing record for (PlayerID, SessionID), updates it in
// place when present, and inserts otherwise; the whole step is atomic.
type AttendanceRepository interface {
	GetByID(ctx context.Context, id int64) (AttendanceRecord, bool, error)
	GetByPlayerAndSession(ctx context.Context, playerID, sessionID int64) (AttendanceRecord, bool, error)
	ListBySession(ctx context.Context, sessionID int64) ([]AttendanceRecord, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]AttendanceRecord, error)
	CountByPlayerAndStatus(ctx context.Context, playerID int64, status AttendanceStatus) (int, error)
	Upsert(ctx context.Context, r *AttendanceRecord) error
	Delete(ctx context.Context, id int64) error
}
