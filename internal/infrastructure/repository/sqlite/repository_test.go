package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/futclub/clubmanager/internal/database"
	"github.com/futclub/clubmanager/internal/domain/match"
	"github.com/futclub/clubmanager/internal/domain/matchevent"
	"github.com/futclub/clubmanager/internal/domain/player"
	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/staff"
	"github.com/futclub/clubmanager/internal/domain/training"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

func openTestStore(t *testing.T) *database.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "club.db")
	db, err := database.Open(context.Background(), path, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	loader := database.NewSchemaLoader(db, logging.NewNop())
	require.NoError(t, loader.ApplyFile(context.Background(), filepath.Join("..", "..", "..", "..", "db", "schema.sql")))
	return db
}

func insertTestPlayer(t *testing.T, db *database.DB, shirt int) player.Player {
	t.Helper()

	p := player.Player{
		FirstName:     "Test",
		LastName:      "Player",
		DateOfBirth:   time.Date(2000, time.May, 10, 0, 0, 0, 0, time.UTC),
		Position:      player.PositionMidfielder,
		ShirtNumber:   shirt,
		Status:        player.StatusAvailable,
		OverallRating: 70,
		FitnessLevel:  95,
	}
	require.NoError(t, NewPlayerRepository(db).Insert(context.Background(), &p))
	require.NotZero(t, p.ID)
	return p
}

func insertTestMatch(t *testing.T, db *database.DB) match.Match {
	t.Helper()

	m := match.Match{
		Date:     time.Date(2025, time.September, 14, 0, 0, 0, 0, time.UTC),
		Opponent: "Rovers",
		Venue:    "HOME",
		Status:   match.StatusScheduled,
	}
	require.NoError(t, NewMatchRepository(db).Insert(context.Background(), &m))
	return m
}

// insertTestCoach creates the account and staff record a session's coach_id
// foreign key needs.
func insertTestCoach(t *testing.T, db *database.DB) staff.Staff {
	t.Helper()

	u := user.User{Username: "coach.test", PasswordHash: "x", Role: user.RoleCoach, Active: true}
	require.NoError(t, NewUserRepository(db).Insert(context.Background(), &u))

	s := staff.Staff{FullName: "Test Coach", UserID: u.ID}
	require.NoError(t, NewStaffRepository(db).Insert(context.Background(), &s))
	return s
}

func insertTestSession(t *testing.T, db *database.DB, coachID int64) training.Session {
	t.Helper()

	s := training.Session{
		Date:            time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		Focus:           "pressing",
		DurationMinutes: 90,
		Intensity:       training.IntensityHigh,
		CoachID:         coachID,
	}
	require.NoError(t, NewSessionRepository(db).Insert(context.Background(), &s))
	return s
}

func TestUserRepository_Lifecycle(t *testing.T) {
	db := openTestStore(t)
	repo := NewUserRepository(db)

	u := user.User{Username: "admin", PasswordHash: "hash", Role: user.RoleAdministrator, Active: true}
	require.NoError(t, repo.Insert(context.Background(), &u))
	require.NotZero(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	got, found, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, u.ID, got.ID)
	require.Nil(t, got.LastLogin)

	got.Active = false
	require.NoError(t, repo.Update(context.Background(), got))

	at := time.Date(2025, time.August, 1, 18, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(context.Background(), u.ID, at))

	got, found, err = repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, got.Active)
	require.NotNil(t, got.LastLogin)
	require.True(t, got.LastLogin.Equal(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)))

	_, found, err = repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	require.False(t, found)
}

func TestPlayerRepository_ListOrdersByShirtNumber(t *testing.T) {
	db := openTestStore(t)
	repo := NewPlayerRepository(db)

	for _, shirt := range []int{9, 1, 30} {
		insertTestPlayer(t, db, shirt)
	}

	players, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 3)
	require.Equal(t, []int{1, 9, 30}, []int{players[0].ShirtNumber, players[1].ShirtNumber, players[2].ShirtNumber})

	got, found, err := repo.GetByShirtNumber(context.Background(), 9)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 9, got.ShirtNumber)
}

func TestPlayerRepository_DeleteRemovesDependentRows(t *testing.T) {
	db := openTestStore(t)

	p := insertTestPlayer(t, db, 7)
	keep := insertTestPlayer(t, db, 8)
	m := insertTestMatch(t, db)
	coach := insertTestCoach(t, db)
	session := insertTestSession(t, db, coach.ID)

	attendance := NewAttendanceRepository(db)
	rec := training.AttendanceRecord{PlayerID: p.ID, SessionID: session.ID, Status: training.AttendancePresent}
	require.NoError(t, attendance.Upsert(context.Background(), &rec))

	stats := NewPlayerStatsRepository(db)
	line := playerstats.MatchStats{PlayerID: p.ID, MatchID: m.ID, MinutesPlayed: 90, Goals: 1, Rating: 7.5}
	require.NoError(t, stats.Insert(context.Background(), &line))
	keepLine := playerstats.MatchStats{PlayerID: keep.ID, MatchID: m.ID, MinutesPlayed: 45, Rating: 6.0}
	require.NoError(t, stats.Insert(context.Background(), &keepLine))

	events := NewMatchEventRepository(db)
	ev := matchevent.Event{MatchID: m.ID, PlayerID: &p.ID, Type: matchevent.TypeYellowCard, Minute: 30}
	require.NoError(t, events.Insert(context.Background(), &ev))

	require.NoError(t, NewPlayerRepository(db).Delete(context.Background(), p.ID))

	_, found, err := NewPlayerRepository(db).GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.False(t, found)

	records, err := attendance.ListByPlayer(context.Background(), p.ID)
	require.NoError(t, err)
	require.Empty(t, records)

	lines, err := stats.ListByPlayer(context.Background(), p.ID)
	require.NoError(t, err)
	require.Empty(t, lines)

	timeline, err := events.ListByMatch(context.Background(), m.ID)
	require.NoError(t, err)
	require.Empty(t, timeline)

	// Unrelated rows survive.
	lines, err = stats.ListByPlayer(context.Background(), keep.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestAttendanceRepository_UpsertReusesRow(t *testing.T) {
	db := openTestStore(t)

	p := insertTestPlayer(t, db, 4)
	coach := insertTestCoach(t, db)
	session := insertTestSession(t, db, coach.ID)

	repo := NewAttendanceRepository(db)

	first := training.AttendanceRecord{PlayerID: p.ID, SessionID: session.ID, Status: training.AttendancePresent}
	require.NoError(t, repo.Upsert(context.Background(), &first))
	require.NotNil(t, first.RecordedAt)

	second := training.AttendanceRecord{PlayerID: p.ID, SessionID: session.ID, Status: training.AttendanceLate, Notes: "traffic"}
	require.NoError(t, repo.Upsert(context.Background(), &second))
	require.Equal(t, first.ID, second.ID)

	records, err := repo.ListBySession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, training.AttendanceLate, records[0].Status)
	require.Equal(t, "traffic", records[0].Notes)

	count, err := repo.CountByPlayerAndStatus(context.Background(), p.ID, training.AttendanceLate)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestPlayerStatsRepository_Aggregates(t *testing.T) {
	db := openTestStore(t)

	striker := insertTestPlayer(t, db, 9)
	winger := insertTestPlayer(t, db, 11)
	bench := insertTestPlayer(t, db, 23)
	m1 := insertTestMatch(t, db)
	m2 := insertTestMatch(t, db)

	repo := NewPlayerStatsRepository(db)
	for _, line := range []playerstats.MatchStats{
		{PlayerID: striker.ID, MatchID: m1.ID, MinutesPlayed: 90, Goals: 2, Rating: 8.0},
		{PlayerID: striker.ID, MatchID: m2.ID, MinutesPlayed: 90, Goals: 1, Rating: 7.0},
		{PlayerID: winger.ID, MatchID: m1.ID, MinutesPlayed: 90, Goals: 1, Rating: 9.0},
		{PlayerID: bench.ID, MatchID: m1.ID, MinutesPlayed: 0, Rating: 10.0},
	} {
		require.NoError(t, repo.Insert(context.Background(), &line))
	}

	scorers, err := repo.TopScorers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, scorers, 3)
	require.Equal(t, striker.ID, scorers[0].PlayerID)
	require.Equal(t, 3, scorers[0].TotalGoals)

	rated, err := repo.TopRated(context.Background(), 5)
	require.NoError(t, err)
	// The unused substitute has no recorded minutes and is excluded.
	require.Len(t, rated, 2)
	require.Equal(t, winger.ID, rated[0].PlayerID)
	require.InDelta(t, 9.0, rated[0].AvgRating, 0.001)
}

func TestUserRepository_ReadsHistoricEpochTimestamps(t *testing.T) {
	db := openTestStore(t)
	repo := NewUserRepository(db)

	_, err := db.Conn().ExecContext(context.Background(),
		"INSERT INTO users (id, username, password_hash, role, active, created_at) VALUES (1, 'legacy', 'x', 'COACH', 1, '1700000000000')")
	require.NoError(t, err)

	got, found, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, got.CreatedAt.Equal(time.UnixMilli(1700000000000).UTC()))
}

func TestMatchEventTriggers(t *testing.T) {
	db := openTestStore(t)

	p := insertTestPlayer(t, db, 10)
	m := insertTestMatch(t, db)
	events := NewMatchEventRepository(db)

	goal := matchevent.Event{MatchID: m.ID, PlayerID: &p.ID, Type: matchevent.TypeGoal, Minute: 12}
	require.NoError(t, events.Insert(context.Background(), &goal))
	require.NotNil(t, goal.RecordedAt)

	gotMatch, found, err := NewMatchRepository(db).GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, gotMatch.GoalsFor)

	injury := matchevent.Event{MatchID: m.ID, PlayerID: &p.ID, Type: matchevent.TypeInjury, Minute: 55}
	require.NoError(t, events.Insert(context.Background(), &injury))

	gotPlayer, found, err := NewPlayerRepository(db).GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, player.StatusInjured, gotPlayer.Status)
}
