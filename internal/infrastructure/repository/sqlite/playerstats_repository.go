package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/playerstats"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	q execer
}

func NewPlayerStatsRepository(db *database.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work.
func (r *PlayerStatsRepository) WithTx(tx *sqlx.Tx) *PlayerStatsRepository {
	return &PlayerStatsRepository{q: tx}
}

func (r *PlayerStatsRepository) GetByID(ctx context.Context, id int64) (playerstats.MatchStats, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *PlayerStatsRepository) GetByPlayerAndMatch(ctx context.Context, playerID, matchID int64) (playerstats.MatchStats, bool, error) {
	return r.getOne(ctx, qb.Eq("player_id", playerID), qb.Eq("match_id", matchID))
}

func (r *PlayerStatsRepository) getOne(ctx context.Context, conds ...qb.Condition) (playerstats.MatchStats, bool, error) {
	query, args, err := qb.Select("*").From("player_match_stats").Where(conds...).ToSQL()
	if err != nil {
		return playerstats.MatchStats{}, false, fmt.Errorf("build get stats query: %w", err)
	}

	var row statsTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.MatchStats{}, false, nil
		}
		return playerstats.MatchStats{}, false, fmt.Errorf("get stats: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerStatsRepository) ListByMatch(ctx context.Context, matchID int64) ([]playerstats.MatchStats, error) {
	query, args, err := qb.Select("*").From("player_match_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by match query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]playerstats.MatchStats, error) {
	query, args, err := qb.Select("*").From("player_match_stats").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by player query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *PlayerStatsRepository) selectMany(ctx context.Context, query string, args []any) ([]playerstats.MatchStats, error) {
	var rows []statsTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stats: %w", err)
	}

	out := make([]playerstats.MatchStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerStatsRepository) TopScorers(ctx context.Context, limit int) ([]playerstats.ScorerTotal, error) {
	query, args, err := qb.Select("player_id", "SUM(goals) AS total_goals").
		From("player_match_stats").
		GroupBy("player_id").
		OrderBy("total_goals DESC", "player_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top scorers query: %w", err)
	}

	var rows []struct {
		PlayerID   int64 `db:"player_id"`
		TotalGoals int   `db:"total_goals"`
	}
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top scorers: %w", err)
	}

	out := make([]playerstats.ScorerTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.ScorerTotal{PlayerID: row.PlayerID, TotalGoals: row.TotalGoals})
	}
	return out, nil
}

// TopRated averages ratings over appearances with recorded minutes so an
// unused substitute does not drag a player down.
func (r *PlayerStatsRepository) TopRated(ctx context.Context, limit int) ([]playerstats.RatingAverage, error) {
	query, args, err := qb.Select("player_id", "AVG(rating) AS avg_rating").
		From("player_match_stats").
		Where(qb.Gt("minutes_played", 0)).
		GroupBy("player_id").
		OrderBy("avg_rating DESC", "player_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top rated query: %w", err)
	}

	var rows []struct {
		PlayerID  int64   `db:"player_id"`
		AvgRating float64 `db:"avg_rating"`
	}
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top rated: %w", err)
	}

	out := make([]playerstats.RatingAverage, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.RatingAverage{PlayerID: row.PlayerID, AvgRating: row.AvgRating})
	}
	return out, nil
}

func (r *PlayerStatsRepository) Insert(ctx context.Context, s *playerstats.MatchStats) error {
	query, args, err := qb.InsertModel("player_match_stats", statsToInsertModel(*s))
	if err != nil {
		return fmt.Errorf("build insert stats query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert stats: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert stats id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *PlayerStatsRepository) Update(ctx context.Context, s playerstats.MatchStats) error {
	query, args, err := qb.Update("player_match_stats").
		Set("minutes_played", s.MinutesPlayed).
		Set("goals", s.Goals).
		Set("assists", s.Assists).
		Set("rating", s.Rating).
		Set("shots", s.Shots).
		Set("shots_on_target", s.ShotsOnTarget).
		Set("passes_completed", s.PassesCompleted).
		Set("passes_attempted", s.PassesAttempted).
		Set("tackles", s.Tackles).
		Set("interceptions", s.Interceptions).
		Set("yellow_cards", s.YellowCards).
		Set("red_cards", s.RedCards).
		Set("fouls_committed", s.FoulsCommitted).
		Set("fouls_won", s.FoulsWon).
		Set("was_starter", s.WasStarter).
		Where(qb.Eq("id", s.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update stats query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("player_match_stats").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete stats query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}
	return nil
}
