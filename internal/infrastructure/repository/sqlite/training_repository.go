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

type SessionRepository struct {
	q execer
}

func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work.
func (r *SessionRepository) WithTx(tx *sqlx.Tx) *SessionRepository {
	return &SessionRepository{q: tx}
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (training.Session, bool, error) {
	query, args, err := qb.Select("*").From("training_sessions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return training.Session{}, false, fmt.Errorf("build get session query: %w", err)
	}

	var row sessionTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return training.Session{}, false, nil
		}
		return training.Session{}, false, fmt.Errorf("get session: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return training.Session{}, false, err
	}
	return out, true, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]training.Session, error) {
	query, args, err := qb.Select("*").From("training_sessions").
		OrderBy("session_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sessions query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *SessionRepository) ListByCoach(ctx context.Context, coachID int64) ([]training.Session, error) {
	query, args, err := qb.Select("*").From("training_sessions").
		Where(qb.Eq("coach_id", coachID)).
		OrderBy("session_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sessions by coach query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *SessionRepository) ListInDateRange(ctx context.Context, start, end time.Time) ([]training.Session, error) {
	query, args, err := qb.Select("*").From("training_sessions").
		Where(qb.Gte("session_date", formatDate(start)), qb.Lte("session_date", formatDate(end))).
		OrderBy("session_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sessions in range query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *SessionRepository) ListRecent(ctx context.Context, limit int) ([]training.Session, error) {
	query, args, err := qb.Select("*").From("training_sessions").
		OrderBy("session_date DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list recent sessions query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *SessionRepository) selectMany(ctx context.Context, query string, args []any) ([]training.Session, error) {
	var rows []sessionTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}

	out := make([]training.Session, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SessionRepository) Insert(ctx context.Context, s *training.Session) error {
	query, args, err := qb.InsertModel("training_sessions", sessionToInsertModel(*s))
	if err != nil {
		return fmt.Errorf("build insert session query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert session id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, s training.Session) error {
	query, args, err := qb.Update("training_sessions").
		Set("session_date", formatDate(s.Date)).
		Set("focus", s.Focus).
		Set("location", stringToNullString(s.Location)).
		Set("duration_minutes", s.DurationMinutes).
		Set("intensity", string(s.Intensity)).
		Set("coach_id", s.CoachID).
		Set("notes", stringToNullString(s.Notes)).
		Where(qb.Eq("id", s.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update session query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("training_sessions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
