package player

import "context"

// Repository describes player persistence needs from use cases.
// Delete removes the player together with their attendance, stats, and
// event rows in a single atomic unit.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByShirtNumber(ctx context.Context, shirtNumber int) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	ListByStatus(ctx context.Context, status Status) ([]Player, error)
	ListByPosition(ctx context.Context, position Position) ([]Player, error)
	Insert(ctx context.Context, p *Player) error
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id int64) error
}
