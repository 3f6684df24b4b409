package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/matchevent"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type MatchEventRepository struct {
	q execer
}

func NewMatchEventRepository(db *database.DB) *MatchEventRepository {
	return &MatchEventRepository{q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work.
func (r *MatchEventRepository) WithTx(tx *sqlx.Tx) *MatchEventRepository {
	return &MatchEventRepository{q: tx}
}

func (r *MatchEventRepository) GetByID(ctx context.Context, id int64) (matchevent.Event, bool, error) {
	query, args, err := qb.Select("*").From("match_events").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return matchevent.Event{}, false, fmt.Errorf("build get match event query: %w", err)
	}

	var row matchEventTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.Event{}, false, nil
		}
		return matchevent.Event{}, false, fmt.Errorf("get match event: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return matchevent.Event{}, false, err
	}
	return out, true, nil
}

// ListByMatch returns the timeline in clock order.
func (r *MatchEventRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchevent.Event, error) {
	query, args, err := qb.Select("*").From("match_events").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute", "second").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by match query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchEventRepository) ListByType(ctx context.Context, eventType matchevent.Type) ([]matchevent.Event, error) {
	query, args, err := qb.Select("*").From("match_events").
		Where(qb.Eq("event_type", string(eventType))).
		OrderBy("match_id", "minute", "second").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events by type query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchEventRepository) selectMany(ctx context.Context, query string, args []any) ([]matchevent.Event, error) {
	var rows []matchEventTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match events: %w", err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *MatchEventRepository) Insert(ctx context.Context, e *matchevent.Event) error {
	if e.RecordedAt == nil {
		now := time.Now().UTC()
		e.RecordedAt = &now
	}

	query, args, err := qb.InsertModel("match_events", matchEventToInsertModel(*e))
	if err != nil {
		return fmt.Errorf("build insert match event query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert match event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert match event id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *MatchEventRepository) Update(ctx context.Context, e matchevent.Event) error {
	query, args, err := qb.Update("match_events").
		Set("match_id", e.MatchID).
		Set("player_id", int64PtrToNullInt64(e.PlayerID)).
		Set("event_type", string(e.Type)).
		Set("minute", e.Minute).
		Set("second", e.Second).
		Set("description", stringToNullString(e.Description)).
		Where(qb.Eq("id", e.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match event query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match event: %w", err)
	}
	return nil
}

func (r *MatchEventRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("match_events").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match event query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match event: %w", err)
	}
	return nil
}
