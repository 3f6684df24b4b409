package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/player"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *database.DB
	q  execer
}

func NewPlayerRepository(db *database.DB) *PlayerRepository {
	return &PlayerRepository{db: db, q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work. Delete must not be
// called on the copy; it opens its own unit of work.
func (r *PlayerRepository) WithTx(tx *sqlx.Tx) *PlayerRepository {
	return &PlayerRepository{db: r.db, q: tx}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *PlayerRepository) GetByShirtNumber(ctx context.Context, shirtNumber int) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("shirt_number", shirtNumber))
}

func (r *PlayerRepository) getOne(ctx context.Context, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(cond).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return player.Player{}, false, err
	}
	return out, true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		OrderBy("shirt_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *PlayerRepository) ListByStatus(ctx context.Context, status player.Status) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("status", string(status))).
		OrderBy("last_name", "first_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by status query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *PlayerRepository) ListByPosition(ctx context.Context, position player.Position) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("position", string(position))).
		OrderBy("shirt_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by position query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *PlayerRepository) selectMany(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p *player.Player) error {
	query, args, err := qb.InsertModel("players", playerToInsertModel(*p))
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert player id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("date_of_birth", formatDate(p.DateOfBirth)).
		Set("position", string(p.Position)).
		Set("shirt_number", p.ShirtNumber).
		Set("status", string(p.Status)).
		Set("overall_rating", p.OverallRating).
		Set("fitness_level", p.FitnessLevel).
		Set("injury_details", stringToNullString(p.InjuryDetails)).
		Set("joined_date", nullableDate(p.JoinedDate)).
		Set("contract_end", nullableDate(p.ContractEnd)).
		Set("nationality", stringToNullString(p.Nationality)).
		Set("height_cm", intPtrToNullInt64(p.HeightCm)).
		Set("weight_kg", intPtrToNullInt64(p.WeightKg)).
		Set("preferred_foot", stringToNullString(p.PreferredFoot)).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

// Delete removes the player and every dependent row in one unit of work, so
// a failure partway leaves the roster untouched.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, table := range []string{"training_attendance", "player_match_stats", "match_events", "players"} {
			column := "player_id"
			if table == "players" {
				column = "id"
			}
			query, args, err := qb.DeleteFrom(table).Where(qb.Eq(column, id)).ToSQL()
			if err != nil {
				return fmt.Errorf("build delete from %s query: %w", table, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("delete from %s: %w", table, err)
			}
		}
		return nil
	})
}
