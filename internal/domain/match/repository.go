package match

import (
	"context"
	"time"
)

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListUpcoming(ctx context.Context) ([]Match, error)
	ListCompleted(ctx context.Context) ([]Match, error)
	ListByCompetition(ctx context.Context, competition string) ([]Match, error)
	ListInDateRange(ctx context.Context, start, end time.Time) ([]Match, error)
	Insert(ctx context.Context, m *Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id int64) error
}
