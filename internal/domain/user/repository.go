package user

import (
	"context"
	"time"
)

// Repository describes account persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Insert(ctx context.Context, u *User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}
