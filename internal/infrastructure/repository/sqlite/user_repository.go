package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/user"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type UserRepository struct {
	q execer
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work.
func (r *UserRepository) WithTx(tx *sqlx.Tx) *UserRepository {
	return &UserRepository{q: tx}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("username", username))
}

func (r *UserRepository) getOne(ctx context.Context, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").Where(cond).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return user.User{}, false, err
	}
	return out, true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").OrderBy("username").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("role", string(role))).
		OrderBy("username").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users by role query: %w", err)
	}
	return r.selectMany(ctx, query, args)
}

func (r *UserRepository) selectMany(ctx context.Context, query string, args []any) ([]user.User, error) {
	var rows []userTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	query, args, err := qb.InsertModel("users", userToInsertModel(*u))
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user id: %w", err)
	}
	u.ID = id
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	query, args, err := qb.Update("users").
		Set("username", u.Username).
		Set("password_hash", u.PasswordHash).
		Set("role", string(u.Role)).
		Set("active", u.Active).
		Set("last_login", nullableDateTime(u.LastLogin)).
		Where(qb.Eq("id", u.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update user query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("users").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	query, args, err := qb.Update("users").
		Set("last_login", formatDateTime(at)).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update last login query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
