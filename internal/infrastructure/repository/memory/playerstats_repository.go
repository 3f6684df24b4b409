package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futclub/clubmanager/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu     sync.RWMutex
	items  map[int64]playerstats.MatchStats
	nextID int64
}

func NewPlayerStatsRepository(stats []playerstats.MatchStats) *PlayerStatsRepository {
	items := make(map[int64]playerstats.MatchStats, len(stats))
	var nextID int64
	for _, s := range stats {
		items[s.ID] = s
		if s.ID > nextID {
			nextID = s.ID
		}
	}

	return &PlayerStatsRepository{items: items, nextID: nextID}
}

func (r *PlayerStatsRepository) GetByID(_ context.Context, id int64) (playerstats.MatchStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	return s, ok, nil
}

func (r *PlayerStatsRepository) GetByPlayerAndMatch(_ context.Context, playerID, matchID int64) (playerstats.MatchStats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.PlayerID == playerID && s.MatchID == matchID {
			return s, true, nil
		}
	}
	return playerstats.MatchStats{}, false, nil
}

func (r *PlayerStatsRepository) ListByMatch(_ context.Context, matchID int64) ([]playerstats.MatchStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(s playerstats.MatchStats) bool { return s.MatchID == matchID }), nil
}

func (r *PlayerStatsRepository) ListByPlayer(_ context.Context, playerID int64) ([]playerstats.MatchStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(s playerstats.MatchStats) bool { return s.PlayerID == playerID }), nil
}

func (r *PlayerStatsRepository) filter(keep func(playerstats.MatchStats) bool) []playerstats.MatchStats {
	out := make([]playerstats.MatchStats, 0, len(r.items))
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *PlayerStatsRepository) TopScorers(_ context.Context, limit int) ([]playerstats.ScorerTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[int64]int)
	for _, s := range r.items {
		totals[s.PlayerID] += s.Goals
	}

	out := make([]playerstats.ScorerTotal, 0, len(totals))
	for playerID, goals := range totals {
		out = append(out, playerstats.ScorerTotal{PlayerID: playerID, TotalGoals: goals})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGoals != out[j].TotalGoals {
			return out[i].TotalGoals > out[j].TotalGoals
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PlayerStatsRepository) TopRated(_ context.Context, limit int) ([]playerstats.RatingAverage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, s := range r.items {
		if s.MinutesPlayed <= 0 {
			continue
		}
		sums[s.PlayerID] += s.Rating
		counts[s.PlayerID]++
	}

	out := make([]playerstats.RatingAverage, 0, len(sums))
	for playerID, sum := range sums {
		out = append(out, playerstats.RatingAverage{
			PlayerID:  playerID,
			AvgRating: sum / float64(counts[playerID]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PlayerStatsRepository) Insert(_ context.Context, s *playerstats.MatchStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = *s
	return nil
}

func (r *PlayerStatsRepository) Update(_ context.Context, s playerstats.MatchStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = s
	return nil
}

func (r *PlayerStatsRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
