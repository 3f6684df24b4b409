package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/futclub/clubmanager/internal/domain/matchevent"
)

type MatchEventRepository struct {
	mu     sync.RWMutex
	items  map[int64]matchevent.Event
	nextID int64
}

func NewMatchEventRepository(events []matchevent.Event) *MatchEventRepository {
	items := make(map[int64]matchevent.Event, len(events))
	var nextID int64
	for _, e := range events {
		items[e.ID] = e
		if e.ID > nextID {
			nextID = e.ID
		}
	}

	return &MatchEventRepository{items: items, nextID: nextID}
}

func (r *MatchEventRepository) GetByID(_ context.Context, id int64) (matchevent.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	return e, ok, nil
}

func (r *MatchEventRepository) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.clockOrder(func(e matchevent.Event) bool { return e.MatchID == matchID }), nil
}

func (r *MatchEventRepository) ListByType(_ context.Context, eventType matchevent.Type) ([]matchevent.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.clockOrder(func(e matchevent.Event) bool { return e.Type == eventType }), nil
}

func (r *MatchEventRepository) clockOrder(keep func(matchevent.Event) bool) []matchevent.Event {
	out := make([]matchevent.Event, 0, len(r.items))
	for _, e := range r.items {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].Second < out[j].Second
	})
	return out
}

func (r *MatchEventRepository) Insert(_ context.Context, e *matchevent.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.RecordedAt == nil {
		now := time.Now().UTC()
		e.RecordedAt = &now
	}

	r.nextID++
	e.ID = r.nextID
	r.items[e.ID] = *e
	return nil
}

func (r *MatchEventRepository) Update(_ context.Context, e matchevent.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[e.ID] = e
	return nil
}

func (r *MatchEventRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
