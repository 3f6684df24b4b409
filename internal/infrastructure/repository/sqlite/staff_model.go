package sqlite

import (
	"database/sql"

	"github.com/futclub/clubmanager/internal/domain/staff"
)

type staffTableModel struct {
	ID       int64          `db:"id"`
	FullName string         `db:"full_name"`
	UserID   int64          `db:"user_id"`
	Email    sql.NullString `db:"email"`
	Phone    sql.NullString `db:"phone"`
	HireDate sql.NullString `db:"hire_date"`
}

func (m staffTableModel) toDomain() (staff.Staff, error) {
	hireDate, err := parseNullableTemporal("hire_date", m.HireDate)
	if err != nil {
		return staff.Staff{}, err
	}

	return staff.Staff{
		ID:       m.ID,
		FullName: m.FullName,
		UserID:   m.UserID,
		Email:    nullStringToString(m.Email),
		Phone:    nullStringToString(m.Phone),
		HireDate: hireDate,
	}, nil
}

type staffInsertModel struct {
	FullName string         `db:"full_name"`
	UserID   int64          `db:"user_id"`
	Email    sql.NullString `db:"email"`
	Phone    sql.NullString `db:"phone"`
	HireDate sql.NullString `db:"hire_date"`
}

func staffToInsertModel(s staff.Staff) staffInsertModel {
	return staffInsertModel{
		FullName: s.FullName,
		UserID:   s.UserID,
		Email:    stringToNullString(s.Email),
		Phone:    stringToNullString(s.Phone),
		HireDate: nullableDate(s.HireDate),
	}
}
