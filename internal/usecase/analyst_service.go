package usecase

import (
	"context"
	"fmt"

	"github.com/futclub/clubmanager/internal/domain/match"
	"github.com/futclub/clubmanager/internal/domain/matchevent"
	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

// AnalystService covers match timelines and statistical records.
type AnalystService struct {
	events  matchevent.Repository
	stats   playerstats.Repository
	matches match.Repository
	logger  *logging.Logger
}

func NewAnalystService(
	events matchevent.Repository,
	stats playerstats.Repository,
	matches match.Repository,
	logger *logging.Logger,
) *AnalystService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AnalystService{
		events:  events,
		stats:   stats,
		matches: matches,
		logger:  logger,
	}
}

func (s *AnalystService) authorize(actor user.User) error {
	if !actor.HasRole(user.RoleAnalyst) {
		return fmt.Errorf("%w: analyst role required", ErrUnauthorized)
	}
	return nil
}

func (s *AnalystService) LogMatchEvent(ctx context.Context, actor user.User, e matchevent.Event) (matchevent.Event, error) {
	if err := s.authorize(actor); err != nil {
		return matchevent.Event{}, err
	}
	if err := e.Validate(); err != nil {
		return matchevent.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.matches.GetByID(ctx, e.MatchID); err != nil {
		return matchevent.Event{}, fmt.Errorf("get match: %w", err)
	} else if !found {
		return matchevent.Event{}, fmt.Errorf("%w: match %d", ErrNotFound, e.MatchID)
	}

	if err := s.events.Insert(ctx, &e); err != nil {
		return matchevent.Event{}, fmt.Errorf("insert event: %w", err)
	}

	s.logger.InfoContext(ctx, "event logged",
		"event_id", e.ID, "match_id", e.MatchID, "type", e.Type, "minute", e.Minute)
	return e, nil
}

func (s *AnalystService) UpdateMatchEvent(ctx context.Context, actor user.User, e matchevent.Event) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if e.ID <= 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.events.GetByID(ctx, e.ID); err != nil {
		return fmt.Errorf("get event: %w", err)
	} else if !found {
		return fmt.Errorf("%w: event %d", ErrNotFound, e.ID)
	}

	if err := s.events.Update(ctx, e); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *AnalystService) DeleteMatchEvent(ctx context.Context, actor user.User, eventID int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	if _, found, err := s.events.GetByID(ctx, eventID); err != nil {
		return fmt.Errorf("get event: %w", err)
	} else if !found {
		return fmt.Errorf("%w: event %d", ErrNotFound, eventID)
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// GetTimelineForMatch returns the match's events in clock order.
func (s *AnalystService) GetTimelineForMatch(ctx context.Context, actor user.User, matchID int64) ([]matchevent.Event, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	if _, found, err := s.matches.GetByID(ctx, matchID); err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	} else if !found {
		return nil, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	return s.events.ListByMatch(ctx, matchID)
}

func (s *AnalystService) CreatePlayerMatchStats(ctx context.Context, actor user.User, st playerstats.MatchStats) (playerstats.MatchStats, error) {
	if err := s.authorize(actor); err != nil {
		return playerstats.MatchStats{}, err
	}
	if err := st.Validate(); err != nil {
		return playerstats.MatchStats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.stats.GetByPlayerAndMatch(ctx, st.PlayerID, st.MatchID); err != nil {
		return playerstats.MatchStats{}, fmt.Errorf("get stats: %w", err)
	} else if exists {
		return playerstats.MatchStats{}, fmt.Errorf("%w: stats already recorded for player %d in match %d",
			ErrInvalidInput, st.PlayerID, st.MatchID)
	}

	if err := s.stats.Insert(ctx, &st); err != nil {
		return playerstats.MatchStats{}, fmt.Errorf("insert stats: %w", err)
	}

	s.logger.InfoContext(ctx, "stats recorded", "player_id", st.PlayerID, "match_id", st.MatchID)
	return st, nil
}

func (s *AnalystService) UpdatePlayerMatchStats(ctx context.Context, actor user.User, st playerstats.MatchStats) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if st.ID <= 0 {
		return fmt.Errorf("%w: stats id is required", ErrInvalidInput)
	}
	if err := st.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.stats.GetByID(ctx, st.ID); err != nil {
		return fmt.Errorf("get stats: %w", err)
	} else if !found {
		return fmt.Errorf("%w: stats %d", ErrNotFound, st.ID)
	}

	if err := s.stats.Update(ctx, st); err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}

func (s *AnalystService) DeletePlayerMatchStats(ctx context.Context, actor user.User, statsID int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	if _, found, err := s.stats.GetByID(ctx, statsID); err != nil {
		return fmt.Errorf("get stats: %w", err)
	} else if !found {
		return fmt.Errorf("%w: stats %d", ErrNotFound, statsID)
	}

	if err := s.stats.Delete(ctx, statsID); err != nil {
		return fmt.Errorf("delete stats: %w", err)
	}
	return nil
}

func (s *AnalystService) ViewPlayerPerformanceByMatch(ctx context.Context, actor user.User, matchID int64) ([]playerstats.MatchStats, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.stats.ListByMatch(ctx, matchID)
}
