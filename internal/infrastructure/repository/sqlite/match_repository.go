package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/match"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type MatchRepository struct {
	q execer
}

func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work.
func (r *MatchRepository) WithTx(tx *sqlx.Tx) *MatchRepository {
	return &MatchRepository{q: tx}
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, err
	}
	return out, true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").OrderBy("match_date DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchRepository) ListUpcoming(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("status", string(match.StatusScheduled))).
		OrderBy("match_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming matches query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchRepository) ListCompleted(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("status", string(match.StatusCompleted))).
		OrderBy("match_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list completed matches query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchRepository) ListByCompetition(ctx context.Context, competition string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("competition", competition)).
		OrderBy("match_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by competition query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchRepository) ListInDateRange(ctx context.Context, start, end time.Time) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Gte("match_date", formatDate(start)), qb.Lte("match_date", formatDate(end))).
		OrderBy("match_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches in range query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *MatchRepository) selectMany(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) Insert(ctx context.Context, m *match.Match) error {
	query, args, err := qb.InsertModel("matches", matchToInsertModel(*m))
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert match id: %w", err)
	}
	m.ID = id
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.Update("matches").
		Set("match_date", formatDate(m.Date)).
		Set("opponent", m.Opponent).
		Set("venue", stringToNullString(m.Venue)).
		Set("competition", stringToNullString(m.Competition)).
		Set("goals_for", m.GoalsFor).
		Set("goals_against", m.GoalsAgainst).
		Set("status", string(m.Status)).
		Set("attendance", intPtrToNullInt64(m.Attendance)).
		Set("weather", stringToNullString(m.Weather)).
		Set("notes", stringToNullString(m.Notes)).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}
