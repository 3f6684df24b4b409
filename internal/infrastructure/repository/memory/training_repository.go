package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/futclub/clubmanager/internal/domain/training"
)

type SessionRepository struct {
	mu     sync.RWMutex
	items  map[int64]training.Session
	nextID int64
}

func NewSessionRepository(sessions []training.Session) *SessionRepository {
	items := make(map[int64]training.Session, len(sessions))
	var nextID int64
	for _, s := range sessions {
		items[s.ID] = s
		if s.ID > nextID {
			nextID = s.ID
		}
	}

	return &SessionRepository{items: items, nextID: nextID}
}

func (r *SessionRepository) GetByID(_ context.Context, id int64) (training.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	return s, ok, nil
}

func (r *SessionRepository) List(_ context.Context) ([]training.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.newestFirst(func(training.Session) bool { return true }), nil
}

func (r *SessionRepository) ListByCoach(_ context.Context, coachID int64) ([]training.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.newestFirst(func(s training.Session) bool { return s.CoachID == coachID }), nil
}

func (r *SessionRepository) ListInDateRange(_ context.Context, start, end time.Time) ([]training.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.newestFirst(func(s training.Session) bool {
		return !s.Date.Before(start) && !s.Date.After(end)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *SessionRepository) ListRecent(_ context.Context, limit int) ([]training.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.newestFirst(func(training.Session) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SessionRepository) newestFirst(keep func(training.Session) bool) []training.Session {
	out := make([]training.Session, 0, len(r.items))
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *SessionRepository) Insert(_ context.Context, s *training.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = *s
	return nil
}

func (r *SessionRepository) Update(_ context.Context, s training.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = s
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

type AttendanceRepository struct {
	mu     sync.RWMutex
	items  map[int64]training.AttendanceRecord
	nextID int64
}

func NewAttendanceRepository(records []training.AttendanceRecord) *AttendanceRepository {
	items := make(map[int64]training.AttendanceRecord, len(records))
	var nextID int64
	for _, rec := range records {
		items[rec.ID] = rec
		if rec.ID > nextID {
			nextID = rec.ID
		}
	}

	return &AttendanceRepository{items: items, nextID: nextID}
}

func (r *AttendanceRepository) GetByID(_ context.Context, id int64) (training.AttendanceRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	return rec, ok, nil
}

func (r *AttendanceRepository) GetByPlayerAndSession(_ context.Context, playerID, sessionID int64) (training.AttendanceRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.items {
		if rec.PlayerID == playerID && rec.SessionID == sessionID {
			return rec, true, nil
		}
	}
	return training.AttendanceRecord{}, false, nil
}

func (r *AttendanceRepository) ListBySession(_ context.Context, sessionID int64) ([]training.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(rec training.AttendanceRecord) bool { return rec.SessionID == sessionID }), nil
}

func (r *AttendanceRepository) ListByPlayer(_ context.Context, playerID int64) ([]training.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(rec training.AttendanceRecord) bool { return rec.PlayerID == playerID }), nil
}

func (r *AttendanceRepository) filter(keep func(training.AttendanceRecord) bool) []training.AttendanceRecord {
	out := make([]training.AttendanceRecord, 0, len(r.items))
	for _, rec := range r.items {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *AttendanceRepository) CountByPlayerAndStatus(_ context.Context, playerID int64, status training.AttendanceStatus) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.items {
		if rec.PlayerID == playerID && rec.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *AttendanceRepository) Upsert(_ context.Context, rec *training.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.RecordedAt == nil {
		now := time.Now().UTC()
		rec.RecordedAt = &now
	}

	for id, existing := range r.items {
		if existing.PlayerID == rec.PlayerID && existing.SessionID == rec.SessionID {
			rec.ID = id
			r.items[id] = *rec
			return nil
		}
	}

	r.nextID++
	rec.ID = r.nextID
	r.items[rec.ID] = *rec
	return nil
}

func (r *AttendanceRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
