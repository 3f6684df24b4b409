package usecase

import (
	"context"
	"fmt"

	"github.com/futclub/clubmanager/internal/domain/match"
	"github.com/futclub/clubmanager/internal/domain/player"
	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/training"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

const (
	dashboardRecentSessions = 5
	dashboardTopLimit       = 5
)

// Snapshot is a read-only view of the club's state for the landing screen
// and the report command.
type Snapshot struct {
	SquadSize        int                         `json:"squad_size"`
	AvailablePlayers int                         `json:"available_players"`
	InjuredPlayers   int                         `json:"injured_players"`
	UpcomingMatches  []match.Match               `json:"upcoming_matches"`
	CompletedMatches int                         `json:"completed_matches"`
	RecentSessions   []training.Session          `json:"recent_sessions"`
	TopScorers       []playerstats.ScorerTotal   `json:"top_scorers"`
	TopRated         []playerstats.RatingAverage `json:"top_rated"`
}

// DashboardService aggregates across entities. Any authenticated active
// account may read it; it never mutates.
type DashboardService struct {
	players  player.Repository
	matches  match.Repository
	sessions training.SessionRepository
	stats    playerstats.Repository
	logger   *logging.Logger
}

func NewDashboardService(
	players player.Repository,
	matches match.Repository,
	sessions training.SessionRepository,
	stats playerstats.Repository,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &DashboardService{
		players:  players,
		matches:  matches,
		sessions: sessions,
		stats:    stats,
		logger:   logger,
	}
}

func (s *DashboardService) GetSnapshot(ctx context.Context, actor user.User) (Snapshot, error) {
	if !actor.Active || !actor.HasRole(user.RoleCoach, user.RoleAnalyst, user.RoleAdministrator) {
		return Snapshot{}, fmt.Errorf("%w: active account required", ErrUnauthorized)
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list players: %w", err)
	}

	snap := Snapshot{SquadSize: len(players)}
	for _, p := range players {
		switch p.Status {
		case player.StatusAvailable:
			snap.AvailablePlayers++
		case player.StatusInjured:
			snap.InjuredPlayers++
		}
	}

	if snap.UpcomingMatches, err = s.matches.ListUpcoming(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("list upcoming matches: %w", err)
	}

	completed, err := s.matches.ListCompleted(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list completed matches: %w", err)
	}
	snap.CompletedMatches = len(completed)

	if snap.RecentSessions, err = s.sessions.ListRecent(ctx, dashboardRecentSessions); err != nil {
		return Snapshot{}, fmt.Errorf("list recent sessions: %w", err)
	}
	if snap.TopScorers, err = s.stats.TopScorers(ctx, dashboardTopLimit); err != nil {
		return Snapshot{}, fmt.Errorf("top scorers: %w", err)
	}
	if snap.TopRated, err = s.stats.TopRated(ctx, dashboardTopLimit); err != nil {
		return Snapshot{}, fmt.Errorf("top rated: %w", err)
	}

	return snap, nil
}
