package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/staff"
	qb "github.com/futclub/clubmanager/internal/platform/querybuilder"
)

type StaffRepository struct {
	q execer
}

func NewStaffRepository(db *database.DB) *StaffRepository {
	return &StaffRepository{q: db.Conn()}
}

// WithTx returns a copy bound to the given unit of work.
func (r *StaffRepository) WithTx(tx *sqlx.Tx) *StaffRepository {
	return &StaffRepository{q: tx}
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (staff.Staff, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *StaffRepository) GetByUserID(ctx context.Context, userID int64) (staff.Staff, bool, error) {
	return r.getOne(ctx, qb.Eq("user_id", userID))
}

func (r *StaffRepository) getOne(ctx context.Context, cond qb.Condition) (staff.Staff, bool, error) {
	query, args, err := qb.Select("*").From("staff").Where(cond).ToSQL()
	if err != nil {
		return staff.Staff{}, false, fmt.Errorf("build get staff query: %w", err)
	}

	var row staffTableModel
	if err := r.q.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return staff.Staff{}, false, nil
		}
		return staff.Staff{}, false, fmt.Errorf("get staff: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return staff.Staff{}, false, err
	}
	return out, true, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	query, args, err := qb.Select("*").From("staff").OrderBy("full_name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list staff query: %w", err)
	}

	var rows []staffTableModel
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select staff: %w", err)
	}

	out := make([]staff.Staff, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *StaffRepository) Insert(ctx context.Context, s *staff.Staff) error {
	query, args, err := qb.InsertModel("staff", staffToInsertModel(*s))
	if err != nil {
		return fmt.Errorf("build insert staff query: %w", err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert staff id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *StaffRepository) Update(ctx context.Context, s staff.Staff) error {
	query, args, err := qb.Update("staff").
		Set("full_name", s.FullName).
		Set("user_id", s.UserID).
		Set("email", stringToNullString(s.Email)).
		Set("phone", stringToNullString(s.Phone)).
		Set("hire_date", nullableDate(s.HireDate)).
		Where(qb.Eq("id", s.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update staff query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("staff").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete staff query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
