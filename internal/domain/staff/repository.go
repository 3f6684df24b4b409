package staff

import "context"

// Repository describes staff persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Staff, bool, error)
	GetByUserID(ctx context.Context, userID int64) (Staff, bool, error)
	List(ctx context.Context) ([]Staff, error)
	Insert(ctx context.Context, s *Staff) error
	Update(ctx context.Context, s Staff) error
	Delete(ctx context.Context, id int64) error
}
