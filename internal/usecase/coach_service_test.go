package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/training"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/infrastructure/repository/memory"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

func newCoachService() *CoachService {
	return NewCoachService(
		memory.NewSessionRepository(memory.SeedSessions()),
		memory.NewAttendanceRepository(memory.SeedAttendance()),
		memory.NewStaffRepository(memory.SeedStaff()),
		memory.NewPlayerStatsRepository(memory.SeedStats()),
		logging.NewNop(),
	)
}

func validSession() training.Session {
	return training.Session{
		Date:            time.Date(2024, 8, 21, 0, 0, 0, 0, time.UTC),
		Focus:           "Transition play",
		DurationMinutes: 80,
		Intensity:       training.IntensityHigh,
	}
}

func TestCoachService_RejectsOtherRoles(t *testing.T) {
	service := newCoachService()

	for _, actor := range []user.User{adminActor, analystActor, {}} {
		if _, err := service.CreateSession(context.Background(), actor, validSession()); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("CreateSession as %q: expected ErrUnauthorized, got %v", actor.Role, err)
		}
		if _, err := service.UpsertAttendance(context.Background(), actor, training.AttendanceRecord{
			PlayerID: 1, SessionID: 1, Status: training.AttendancePresent,
		}); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("UpsertAttendance as %q: expected ErrUnauthorized, got %v", actor.Role, err)
		}
	}
}

func TestCoachService_CreateSession_ResolvesCoachFromActor(t *testing.T) {
	service := newCoachService()

	created, err := service.CreateSession(context.Background(), coachActor, validSession())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if created.CoachID != memory.StaffIDCoach {
		t.Fatalf("expected coach id %d, got %d", memory.StaffIDCoach, created.CoachID)
	}
}

func TestCoachService_CreateSession_UnlinkedCoach(t *testing.T) {
	service := newCoachService()
	unlinked := user.User{ID: 99, Role: user.RoleCoach, Active: true}

	_, err := service.CreateSession(context.Background(), unlinked, validSession())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for coach without staff record, got %v", err)
	}
}

func TestCoachService_ListSessions_ScopedToActingCoach(t *testing.T) {
	service := newCoachService()

	sessions, err := service.ListSessions(context.Background(), coachActor)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 seeded sessions, got %d", len(sessions))
	}
	for _, sess := range sessions {
		if sess.CoachID != memory.StaffIDCoach {
			t.Fatalf("session %d belongs to coach %d", sess.ID, sess.CoachID)
		}
	}
}

func TestCoachService_UpsertAttendance_UpdatesInPlace(t *testing.T) {
	service := newCoachService()

	first, err := service.UpsertAttendance(context.Background(), coachActor, training.AttendanceRecord{
		PlayerID:  5,
		SessionID: 2,
		Status:    training.AttendancePresent,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := service.UpsertAttendance(context.Background(), coachActor, training.AttendanceRecord{
		PlayerID:  5,
		SessionID: 2,
		Status:    training.AttendanceLate,
		Notes:     "Arrived mid warm-up",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected upsert to reuse id %d, got %d", first.ID, second.ID)
	}

	records, err := service.GetAttendanceForSession(context.Background(), coachActor, 2)
	if err != nil {
		t.Fatalf("get attendance: %v", err)
	}
	for _, rec := range records {
		if rec.PlayerID == 5 && rec.Status != training.AttendanceLate {
			t.Fatalf("expected LATE after second upsert, got %s", rec.Status)
		}
	}
}

func TestCoachService_UpsertAttendance_UnknownSession(t *testing.T) {
	service := newCoachService()

	_, err := service.UpsertAttendance(context.Background(), coachActor, training.AttendanceRecord{
		PlayerID:  1,
		SessionID: 999,
		Status:    training.AttendancePresent,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCoachService_CreatePlayerPerformance_RejectsDuplicatePair(t *testing.T) {
	service := newCoachService()

	_, err := service.CreatePlayerPerformance(context.Background(), coachActor, playerstats.MatchStats{
		PlayerID:      3,
		MatchID:       1,
		MinutesPlayed: 90,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate (player, match), got %v", err)
	}
}
