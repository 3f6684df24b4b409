package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/futclub/clubmanager/internal/domain/matchevent"
	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/infrastructure/repository/memory"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

func newAnalystService() *AnalystService {
	return NewAnalystService(
		memory.NewMatchEventRepository(memory.SeedMatchEvents()),
		memory.NewPlayerStatsRepository(memory.SeedStats()),
		memory.NewMatchRepository(memory.SeedMatches()),
		logging.NewNop(),
	)
}

func TestAnalystService_RejectsOtherRoles(t *testing.T) {
	service := newAnalystService()

	for _, actor := range []user.User{adminActor, coachActor, {}} {
		if _, err := service.LogMatchEvent(context.Background(), actor, matchevent.Event{
			MatchID: 1, Type: matchevent.TypeGoal, Minute: 10,
		}); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("LogMatchEvent as %q: expected ErrUnauthorized, got %v", actor.Role, err)
		}
		if _, err := service.GetTimelineForMatch(context.Background(), actor, 1); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("GetTimelineForMatch as %q: expected ErrUnauthorized, got %v", actor.Role, err)
		}
	}
}

func TestAnalystService_LogMatchEvent(t *testing.T) {
	service := newAnalystService()

	created, err := service.LogMatchEvent(context.Background(), analystActor, matchevent.Event{
		MatchID: 1,
		Type:    matchevent.TypeSubstitution,
		Minute:  70,
	})
	if err != nil {
		t.Fatalf("log event: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.RecordedAt == nil {
		t.Fatalf("expected recorded at to be stamped")
	}
}

func TestAnalystService_LogMatchEvent_UnknownMatch(t *testing.T) {
	service := newAnalystService()

	_, err := service.LogMatchEvent(context.Background(), analystActor, matchevent.Event{
		MatchID: 999,
		Type:    matchevent.TypeGoal,
		Minute:  10,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalystService_LogMatchEvent_InvalidClock(t *testing.T) {
	service := newAnalystService()

	_, err := service.LogMatchEvent(context.Background(), analystActor, matchevent.Event{
		MatchID: 1,
		Type:    matchevent.TypeGoal,
		Minute:  10,
		Second:  75,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad clock, got %v", err)
	}
}

func TestAnalystService_GetTimelineForMatch_ClockOrder(t *testing.T) {
	service := newAnalystService()

	timeline, err := service.GetTimelineForMatch(context.Background(), analystActor, 1)
	if err != nil {
		t.Fatalf("get timeline: %v", err)
	}
	if len(timeline) != 4 {
		t.Fatalf("expected 4 seeded events for match 1, got %d", len(timeline))
	}
	for i := 1; i < len(timeline); i++ {
		prev, cur := timeline[i-1], timeline[i]
		if prev.Minute > cur.Minute || (prev.Minute == cur.Minute && prev.Second > cur.Second) {
			t.Fatalf("timeline out of clock order at index %d", i)
		}
	}
}

func TestAnalystService_CreatePlayerMatchStats_RejectsDuplicatePair(t *testing.T) {
	service := newAnalystService()

	_, err := service.CreatePlayerMatchStats(context.Background(), analystActor, playerstats.MatchStats{
		PlayerID:      1,
		MatchID:       1,
		MinutesPlayed: 90,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate (player, match), got %v", err)
	}
}

func TestAnalystService_UpdatePlayerMatchStats_NotFound(t *testing.T) {
	service := newAnalystService()

	err := service.UpdatePlayerMatchStats(context.Background(), analystActor, playerstats.MatchStats{
		ID:       999,
		PlayerID: 1,
		MatchID:  3,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
