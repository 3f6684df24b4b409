package playerstats

import "context"

// Repository describes match statistics persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (MatchStats, bool, error)
	GetByPlayerAndMatch(ctx context.Context, playerID, matchID int64) (MatchStats, bool, error)
	ListByMatch(ctx context.Context, matchID int64) ([]MatchStats, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]MatchStats, error)
	TopScorers(ctx context.Context, limit int) ([]ScorerTotal, error)
	TopRated(ctx context.Context, limit int) ([]RatingAverage, error)
	Insert(ctx context.Context, s *MatchStats) error
	Update(ctx context.Context, s MatchStats) error
	Delete(ctx context.Context, id int64) error
}
