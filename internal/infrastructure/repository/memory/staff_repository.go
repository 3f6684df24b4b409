package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futclub/clubmanager/internal/domain/staff"
)

type StaffRepository struct {
	mu     sync.RWMutex
	items  map[int64]staff.Staff
	nextID int64
}

func NewStaffRepository(members []staff.Staff) *StaffRepository {
	items := make(map[int64]staff.Staff, len(members))
	var nextID int64
	for _, s := range members {
		items[s.ID] = s
		if s.ID > nextID {
			nextID = s.ID
		}
	}

	return &StaffRepository{items: items, nextID: nextID}
}

func (r *StaffRepository) GetByID(_ context.Context, id int64) (staff.Staff, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	return s, ok, nil
}

func (r *StaffRepository) GetByUserID(_ context.Context, userID int64) (staff.Staff, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.UserID == userID {
			return s, true, nil
		}
	}
	return staff.Staff{}, false, nil
}

func (r *StaffRepository) List(_ context.Context) ([]staff.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Staff, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *StaffRepository) Insert(_ context.Context, s *staff.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = *s
	return nil
}

func (r *StaffRepository) Update(_ context.Context, s staff.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = s
	return nil
}

func (r *StaffRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
