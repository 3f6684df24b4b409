package usecase

import (
	"context"
	"fmt"

	"github.com/futclub/clubmanager/internal/domain/match"
	"github.com/futclub/clubmanager/internal/domain/player"
	"github.com/futclub/clubmanager/internal/domain/staff"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

// AdminService covers roster, staff, and fixture management. Every method
// requires the administrator role before touching a repository.
type AdminService struct {
	players player.Repository
	staff   staff.Repository
	matches match.Repository
	logger  *logging.Logger
}

func NewAdminService(
	players player.Repository,
	staffRepo staff.Repository,
	matches match.Repository,
	logger *logging.Logger,
) *AdminService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AdminService{
		players: players,
		staff:   staffRepo,
		matches: matches,
		logger:  logger,
	}
}

func (s *AdminService) authorize(actor user.User) error {
	if !actor.HasRole(user.RoleAdministrator) {
		return fmt.Errorf("%w: administrator role required", ErrUnauthorized)
	}
	return nil
}

func (s *AdminService) RegisterPlayer(ctx context.Context, actor user.User, p player.Player) (player.Player, error) {
	if err := s.authorize(actor); err != nil {
		return player.Player{}, err
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, taken, err := s.players.GetByShirtNumber(ctx, p.ShirtNumber); err != nil {
		return player.Player{}, fmt.Errorf("get player by shirt number: %w", err)
	} else if taken {
		return player.Player{}, fmt.Errorf("%w: shirt number %d is taken", ErrInvalidInput, p.ShirtNumber)
	}

	if err := s.players.Insert(ctx, &p); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	s.logger.InfoContext(ctx, "player registered", "player_id", p.ID, "shirt_number", p.ShirtNumber)
	return p, nil
}

func (s *AdminService) UpdatePlayer(ctx context.Context, actor user.User, p player.Player) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if p.ID <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.players.GetByID(ctx, p.ID); err != nil {
		return fmt.Errorf("get player: %w", err)
	} else if !found {
		return fmt.Errorf("%w: player %d", ErrNotFound, p.ID)
	}

	if other, taken, err := s.players.GetByShirtNumber(ctx, p.ShirtNumber); err != nil {
		return fmt.Errorf("get player by shirt number: %w", err)
	} else if taken && other.ID != p.ID {
		return fmt.Errorf("%w: shirt number %d is taken", ErrInvalidInput, p.ShirtNumber)
	}

	if err := s.players.Update(ctx, p); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	s.logger.InfoContext(ctx, "player updated", "player_id", p.ID)
	return nil
}

// RemovePlayer deletes the player together with their attendance, stats,
// and event rows; the repository runs the removal atomically.
func (s *AdminService) RemovePlayer(ctx context.Context, actor user.User, playerID int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	if _, found, err := s.players.GetByID(ctx, playerID); err != nil {
		return fmt.Errorf("get player: %w", err)
	} else if !found {
		return fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	if err := s.players.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player removed", "player_id", playerID)
	return nil
}

func (s *AdminService) ListPlayers(ctx context.Context, actor user.User) ([]player.Player, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.players.List(ctx)
}

func (s *AdminService) RegisterStaff(ctx context.Context, actor user.User, m staff.Staff) (staff.Staff, error) {
	if err := s.authorize(actor); err != nil {
		return staff.Staff{}, err
	}
	if err := m.Validate(); err != nil {
		return staff.Staff{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, linked, err := s.staff.GetByUserID(ctx, m.UserID); err != nil {
		return staff.Staff{}, fmt.Errorf("get staff by user: %w", err)
	} else if linked {
		return staff.Staff{}, fmt.Errorf("%w: user %d already has a staff record", ErrInvalidInput, m.UserID)
	}

	if err := s.staff.Insert(ctx, &m); err != nil {
		return staff.Staff{}, fmt.Errorf("insert staff: %w", err)
	}

	s.logger.InfoContext(ctx, "staff registered", "staff_id", m.ID, "user_id", m.UserID)
	return m, nil
}

func (s *AdminService) UpdateStaff(ctx context.Context, actor user.User, m staff.Staff) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if m.ID <= 0 {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.staff.GetByID(ctx, m.ID); err != nil {
		return fmt.Errorf("get staff: %w", err)
	} else if !found {
		return fmt.Errorf("%w: staff %d", ErrNotFound, m.ID)
	}

	if err := s.staff.Update(ctx, m); err != nil {
		return fmt.Errorf("update staff: %w", err)
	}

	s.logger.InfoContext(ctx, "staff updated", "staff_id", m.ID)
	return nil
}

func (s *AdminService) RemoveStaff(ctx context.Context, actor user.User, staffID int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	if _, found, err := s.staff.GetByID(ctx, staffID); err != nil {
		return fmt.Errorf("get staff: %w", err)
	} else if !found {
		return fmt.Errorf("%w: staff %d", ErrNotFound, staffID)
	}

	if err := s.staff.Delete(ctx, staffID); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}

	s.logger.InfoContext(ctx, "staff removed", "staff_id", staffID)
	return nil
}

func (s *AdminService) ListStaff(ctx context.Context, actor user.User) ([]staff.Staff, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.staff.List(ctx)
}

func (s *AdminService) ScheduleMatch(ctx context.Context, actor user.User, m match.Match) (match.Match, error) {
	if err := s.authorize(actor); err != nil {
		return match.Match{}, err
	}
	if m.Status == "" {
		m.Status = match.StatusScheduled
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matches.Insert(ctx, &m); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	s.logger.InfoContext(ctx, "match scheduled", "match_id", m.ID, "opponent", m.Opponent)
	return m, nil
}

func (s *AdminService) UpdateMatch(ctx context.Context, actor user.User, m match.Match) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if m.ID <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.matches.GetByID(ctx, m.ID); err != nil {
		return fmt.Errorf("get match: %w", err)
	} else if !found {
		return fmt.Errorf("%w: match %d", ErrNotFound, m.ID)
	}

	if err := s.matches.Update(ctx, m); err != nil {
		return fmt.Errorf("update match: %w", err)
	}

	s.logger.InfoContext(ctx, "match updated", "match_id", m.ID)
	return nil
}

func (s *AdminService) RemoveMatch(ctx context.Context, actor user.User, matchID int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	if _, found, err := s.matches.GetByID(ctx, matchID); err != nil {
		return fmt.Errorf("get match: %w", err)
	} else if !found {
		return fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	if err := s.matches.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match removed", "match_id", matchID)
	return nil
}

func (s *AdminService) ListMatches(ctx context.Context, actor user.User) ([]match.Match, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.matches.List(ctx)
}
