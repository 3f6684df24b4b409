package sqlite

import (
	"database/sql"

	"github.com/futclub/clubmanager/internal/domain/user"
)

type userTableModel struct {
	ID           int64          `db:"id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Active       bool           `db:"active"`
	CreatedAt    sql.NullString `db:"created_at"`
	LastLogin    sql.NullString `db:"last_login"`
}

func (m userTableModel) toDomain() (user.User, error) {
	createdAt, err := parseRequiredTemporal("created_at", m.CreatedAt)
	if err != nil {
		return user.User{}, err
	}
	lastLogin, err := parseNullableTemporal("last_login", m.LastLogin)
	if err != nil {
		return user.User{}, err
	}

	return user.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         user.Role(m.Role),
		Active:       m.Active,
		CreatedAt:    createdAt,
		LastLogin:    lastLogin,
	}, nil
}

type userInsertModel struct {
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Active       bool           `db:"active"`
	CreatedAt    string         `db:"created_at"`
	LastLogin    sql.NullString `db:"last_login"`
}

func userToInsertModel(u user.User) userInsertModel {
	return userInsertModel{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
		CreatedAt:    formatDateTime(u.CreatedAt),
		LastLogin:    nullableDateTime(u.LastLogin),
	}
}
