package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/training"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type AttendanceRepository struct {
	db *database.DB
	q  execer
}

func NewAttendanceRepository(db *database.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db, q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work. Upsert must not be
// called on the copy; it opens its own unit of work.
func (r *AttendanceRepository) WithTx(tx *sqlx.Tx) *AttendanceRepository {
	return &AttendanceRepository{db: r.db, q: tx}
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (training.AttendanceRecord, bool, error) {
	return getAttendance(ctx, r.q, qb.Eq("id", id))
}

func (r *AttendanceRepository) GetByPlayerAndSession(ctx context.Context, playerID, sessionID int64) (training.AttendanceRecord, bool, error) {
	return getAttendance(ctx, r.q, qb.Eq("player_id", playerID), qb.Eq("session_id", sessionID))
}

func getAttendance(ctx context.Context, q execer, conds ...qb.Condition) (training.AttendanceRecord, bool, error) {
	query, args, err := qb.Select("*").From("training_attendance").Where(conds...).ToSQL()
	if err != nil {
		return training.AttendanceRecord{}, false, fmt.Errorf("build get attendance query: %w", err)
	}

	var row attendanceTableModel
	if err := q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return training.AttendanceRecord{}, false, nil
		}
		return training.AttendanceRecord{}, false, fmt.Errorf("get attendance: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return training.AttendanceRecord{}, false, err
	}
	return out, true, nil
}

func (r *AttendanceRepository) ListBySession(ctx context.Context, sessionID int64) ([]training.AttendanceRecord, error) {
	query, args, err := qb.Select("*").From("training_attendance").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendance by session query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *AttendanceRepository) ListByPlayer(ctx context.Context, playerID int64) ([]training.AttendanceRecord, error) {
	query, args, err := qb.Select("*").From("training_attendance").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("session_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendance by player query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *AttendanceRepository) selectMany(ctx context.Context, query string, args []any) ([]training.AttendanceRecord, error) {
	var rows []attendanceTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select attendance: %w", err)
	}

	out := make([]training.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *AttendanceRepository) CountByPlayerAndStatus(ctx context.Context, playerID int64, status training.AttendanceStatus) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("training_attendance").
		Where(qb.Eq("player_id", playerID), qb.Eq("status", string(status))).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count attendance query: %w", err)
	}

	var count int
	if err := r.q.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return count, nil
}

// Upsert records attendance for (PlayerID, SessionID). The read and the
// write run in one unit of work so two writers cannot race a duplicate pair
// past the unique index.
func (r *AttendanceRepository) Upsert(ctx context.Context, rec *training.AttendanceRecord) error {
	if rec.RecordedAt == nil {
		now := time.Now().UTC()
		rec.RecordedAt = &now
	}

	return r.db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		existing, found, err := getAttendance(ctx, tx,
			qb.Eq("player_id", rec.PlayerID), qb.Eq("session_id", rec.SessionID))
		if err != nil {
			return err
		}

		if found {
			query, args, err := qb.Update("training_attendance").
				Set("status", string(rec.Status)).
				Set("notes", stringToNullString(rec.Notes)).
				Set("recorded_at", nullableDateTime(rec.RecordedAt)).
				Where(qb.Eq("id", existing.ID)).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update attendance query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("update attendance: %w", err)
			}
			rec.ID = existing.ID
			return nil
		}

		query, args, err := qb.InsertModel("training_attendance", attendanceToInsertModel(*rec))
		if err != nil {
			return fmt.Errorf("build insert attendance query: %w", err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("insert attendance: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert attendance id: %w", err)
		}
		rec.ID = id
		return nil
	})
}

func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("training_attendance").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete attendance query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return nil
}
