package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/futclub/clubmanager/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[int64]match.Match
	nextID int64
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[int64]match.Match, len(matches))
	var nextID int64
	for _, m := range matches {
		items[m.ID] = m
		if m.ID > nextID {
			nextID = m.ID
		}
	}

	return &MatchRepository{items: items, nextID: nextID}
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	return m, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(match.Match) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(m match.Match) bool { return m.Status == match.StatusScheduled }), nil
}

func (r *MatchRepository) ListCompleted(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.filter(func(m match.Match) bool { return m.Status == match.StatusCompleted })
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *MatchRepository) ListByCompetition(_ context.Context, competition string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(m match.Match) bool { return m.Competition == competition }), nil
}

func (r *MatchRepository) ListInDateRange(_ context.Context, start, end time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(m match.Match) bool {
		return !m.Date.Before(start) && !m.Date.After(end)
	}), nil
}

func (r *MatchRepository) filter(keep func(match.Match) bool) []match.Match {
	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r *MatchRepository) Insert(_ context.Context, m *match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.items[m.ID] = *m
	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = m
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
