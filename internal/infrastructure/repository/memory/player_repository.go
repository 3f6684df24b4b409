package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futclub/clubmanager/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	nextID int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[int64]player.Player, len(players))
	var nextID int64
	for _, p := range players {
		items[p.ID] = p
		if p.ID > nextID {
			nextID = p.ID
		}
	}

	return &PlayerRepository{items: items, nextID: nextID}
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	return p, ok, nil
}

func (r *PlayerRepository) GetByShirtNumber(_ context.Context, shirtNumber int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ShirtNumber == shirtNumber {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(player.Player) bool { return true }), nil
}

func (r *PlayerRepository) ListByStatus(_ context.Context, status player.Status) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p player.Player) bool { return p.Status == status }), nil
}

func (r *PlayerRepository) ListByPosition(_ context.Context, position player.Position) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(p player.Player) bool { return p.Position == position }), nil
}

func (r *PlayerRepository) filter(keep func(player.Player) bool) []player.Player {
	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShirtNumber < out[j].ShirtNumber })
	return out
}

func (r *PlayerRepository) Insert(_ context.Context, p *player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
