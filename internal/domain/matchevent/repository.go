package matchevent

import "context"

// Repository describes match event persistence needs from use cases.
// ListByMatch returns the timeline ordered by (minute, second).
type Repository interface {
	GetByID(ctx context.Context, id int64) (Event, bool, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
	ListByType(ctx context.Context, eventType Type) ([]Event, error)
	Insert(ctx context.Context, e *Event) error
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id int64) error
}
