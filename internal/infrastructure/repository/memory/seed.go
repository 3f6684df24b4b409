package memory

import (
	"time"

	"github.com/futclub/clubmanager/internal/domain/match"
	"github.com/futclub/clubmanager/internal/domain/matchevent"
	"github.com/futclub/clubmanager/internal/domain/player"
	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/staff"
	"github.com/futclub/clubmanager/internal/domain/training"
	"github.com/futclub/clubmanager/internal/domain/user"
)

const (
	UserIDAdmin   = int64(1)
	UserIDCoach   = int64(2)
	UserIDAnalyst = int64(3)

	StaffIDCoach   = int64(1)
	StaffIDAnalyst = int64(2)
)

// SeedUsers returns the default accounts. passwordHash should be the digest
// of "password123" from the hasher under test.
func SeedUsers(passwordHash string) []user.User {
	createdAt := date(2024, time.January, 1)
	return []user.User{
		{ID: UserIDAdmin, Username: "admin", PasswordHash: passwordHash, Role: user.RoleAdministrator, Active: true, CreatedAt: createdAt},
		{ID: UserIDCoach, Username: "coach.smith", PasswordHash: passwordHash, Role: user.RoleCoach, Active: true, CreatedAt: createdAt},
		{ID: UserIDAnalyst, Username: "analyst.jones", PasswordHash: passwordHash, Role: user.RoleAnalyst, Active: true, CreatedAt: createdAt},
	}
}

func SeedStaff() []staff.Staff {
	hired := date(2023, time.July, 1)
	return []staff.Staff{
		{ID: StaffIDCoach, FullName: "Alan Smith", UserID: UserIDCoach, Email: "alan.smith@futclub.example", HireDate: &hired},
		{ID: StaffIDAnalyst, FullName: "Mary Jones", UserID: UserIDAnalyst, Email: "mary.jones@futclub.example", HireDate: &hired},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, FirstName: "Tom", LastName: "Keeper", DateOfBirth: date(1995, time.March, 12), Position: player.PositionGoalkeeper, ShirtNumber: 1, Status: player.StatusAvailable, OverallRating: 74, FitnessLevel: 95},
		{ID: 2, FirstName: "Luka", LastName: "Stone", DateOfBirth: date(1998, time.November, 2), Position: player.PositionDefender, ShirtNumber: 4, Status: player.StatusAvailable, OverallRating: 71, FitnessLevel: 92},
		{ID: 3, FirstName: "Mats", LastName: "Berg", DateOfBirth: date(1997, time.June, 21), Position: player.PositionMidfielder, ShirtNumber: 8, Status: player.StatusAvailable, OverallRating: 76, FitnessLevel: 90},
		{ID: 4, FirstName: "Diego", LastName: "Sol", DateOfBirth: date(2000, time.January, 30), Position: player.PositionForward, ShirtNumber: 9, Status: player.StatusInjured, OverallRating: 78, FitnessLevel: 60, InjuryDetails: "Hamstring"},
		{ID: 5, FirstName: "Sam", LastName: "Wing", DateOfBirth: date(2001, time.September, 17), Position: player.PositionForward, ShirtNumber: 11, Status: player.StatusAvailable, OverallRating: 72, FitnessLevel: 97},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: 1, Date: date(2024, time.August, 10), Opponent: "Riverside FC", Venue: "Home", Competition: "League", GoalsFor: 2, GoalsAgainst: 1, Status: match.StatusCompleted},
		{ID: 2, Date: date(2024, time.August, 17), Opponent: "Harbor Town", Venue: "Away", Competition: "League", Status: match.StatusCompleted},
		{ID: 3, Date: date(2024, time.September, 1), Opponent: "Old Mill United", Venue: "Home", Competition: "Cup", Status: match.StatusScheduled},
	}
}

func SeedSessions() []training.Session {
	return []training.Session{
		{ID: 1, Date: date(2024, time.August, 5), Focus: "Pressing shape", Location: "Main pitch", DurationMinutes: 90, Intensity: training.IntensityHigh, CoachID: StaffIDCoach},
		{ID: 2, Date: date(2024, time.August, 7), Focus: "Set pieces", Location: "Main pitch", DurationMinutes: 75, Intensity: training.IntensityMedium, CoachID: StaffIDCoach},
		{ID: 3, Date: date(2024, time.August, 14), Focus: "Recovery", Location: "Gym", DurationMinutes: 60, Intensity: training.IntensityLow, CoachID: StaffIDCoach},
	}
}

func SeedAttendance() []training.AttendanceRecord {
	return []training.AttendanceRecord{
		{ID: 1, PlayerID: 1, SessionID: 1, Status: training.AttendancePresent},
		{ID: 2, PlayerID: 2, SessionID: 1, Status: training.AttendancePresent},
		{ID: 3, PlayerID: 3, SessionID: 1, Status: training.AttendanceLate},
		{ID: 4, PlayerID: 4, SessionID: 1, Status: training.AttendanceExcused},
		{ID: 5, PlayerID: 1, SessionID: 2, Status: training.AttendancePresent},
	}
}

func SeedMatchEvents() []matchevent.Event {
	berg, wing, sol, stone := int64(3), int64(5), int64(4), int64(2)
	return []matchevent.Event{
		{ID: 1, MatchID: 1, PlayerID: &berg, Type: matchevent.TypeGoal, Minute: 23, Second: 14},
		{ID: 2, MatchID: 1, PlayerID: &berg, Type: matchevent.TypeAssist, Minute: 67, Second: 40},
		{ID: 3, MatchID: 1, PlayerID: &wing, Type: matchevent.TypeGoal, Minute: 67, Second: 45},
		{ID: 4, MatchID: 1, PlayerID: &stone, Type: matchevent.TypeYellowCard, Minute: 81},
		{ID: 5, MatchID: 2, PlayerID: &sol, Type: matchevent.TypeInjury, Minute: 55, Second: 30},
	}
}

func SeedStats() []playerstats.MatchStats {
	return []playerstats.MatchStats{
		{ID: 1, PlayerID: 1, MatchID: 1, MinutesPlayed: 90, Rating: 7.1, WasStarter: true},
		{ID: 2, PlayerID: 3, MatchID: 1, MinutesPlayed: 90, Goals: 1, Assists: 1, Rating: 8.2, WasStarter: true},
		{ID: 3, PlayerID: 5, MatchID: 1, MinutesPlayed: 74, Goals: 1, Rating: 7.6, WasStarter: true},
		{ID: 4, PlayerID: 1, MatchID: 2, MinutesPlayed: 90, Rating: 7.8, WasStarter: true},
		{ID: 5, PlayerID: 3, MatchID: 2, MinutesPlayed: 90, Rating: 6.9, WasStarter: true},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
