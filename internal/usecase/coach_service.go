package usecase

import (
	"context"
	"fmt"

	"github.com/futclub/clubmanager/internal/domain/playerstats"
	"github.com/futclub/clubmanager/internal/domain/staff"
	"github.com/futclub/clubmanager/internal/domain/training"
	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/platform/logging"
)

// CoachService covers training sessions, attendance, and match performance
// entry. Sessions are scoped to the acting coach's staff record.
type CoachService struct {
	sessions   training.SessionRepository
	attendance training.AttendanceRepository
	staff      staff.Repository
	stats      playerstats.Repository
	logger     *logging.Logger
}

func NewCoachService(
	sessions training.SessionRepository,
	attendance training.AttendanceRepository,
	staffRepo staff.Repository,
	stats playerstats.Repository,
	logger *logging.Logger,
) *CoachService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &CoachService{
		sessions:   sessions,
		attendance: attendance,
		staff:      staffRepo,
		stats:      stats,
		logger:     logger,
	}
}

func (s *CoachService) authorize(actor user.User) error {
	if !actor.HasRole(user.RoleCoach) {
		return fmt.Errorf("%w: coach role required", ErrUnauthorized)
	}
	return nil
}

// coachStaffID resolves the staff record behind the acting coach. A coach
// account without a staff record cannot own sessions.
func (s *CoachService) coachStaffID(ctx context.Context, actor user.User) (int64, error) {
	rec, found, err := s.staff.GetByUserID(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("get staff by user: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: user %d has no staff record", ErrInvalidInput, actor.ID)
	}
	return rec.ID, nil
}

func (s *CoachService) CreateSession(ctx context.Context, actor user.User, sess training.Session) (training.Session, error) {
	if err := s.authorize(actor); err != nil {
		return training.Session{}, err
	}

	coachID, err := s.coachStaffID(ctx, actor)
	if err != nil {
		return training.Session{}, err
	}
	sess.CoachID = coachID

	if err := sess.Validate(); err != nil {
		return training.Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.sessions.Insert(ctx, &sess); err != nil {
		return training.Session{}, fmt.Errorf("insert session: %w", err)
	}

	s.logger.InfoContext(ctx, "session created", "session_id", sess.ID, "coach_id", coachID)
	return sess, nil
}

func (s *CoachService) UpdateSession(ctx context.Context, actor user.User, sess training.Session) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if sess.ID <= 0 {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	coachID, err := s.coachStaffID(ctx, actor)
	if err != nil {
		return err
	}

	existing, found, err := s.sessions.GetByID(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: session %d", ErrNotFound, sess.ID)
	}
	if existing.CoachID != coachID {
		return fmt.Errorf("%w: session %d belongs to another coach", ErrUnauthorized, sess.ID)
	}

	sess.CoachID = coachID
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.sessions.Update(ctx, sess); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	s.logger.InfoContext(ctx, "session updated", "session_id", sess.ID)
	return nil
}

func (s *CoachService) DeleteSession(ctx context.Context, actor user.User, sessionID int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	coachID, err := s.coachStaffID(ctx, actor)
	if err != nil {
		return err
	}

	existing, found, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
	}
	if existing.CoachID != coachID {
		return fmt.Errorf("%w: session %d belongs to another coach", ErrUnauthorized, sessionID)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.InfoContext(ctx, "session deleted", "session_id", sessionID)
	return nil
}

// ListSessions returns only the acting coach's sessions.
func (s *CoachService) ListSessions(ctx context.Context, actor user.User) ([]training.Session, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	coachID, err := s.coachStaffID(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.sessions.ListByCoach(ctx, coachID)
}

// UpsertAttendance records one player's attendance for a session, replacing
// any earlier record for the same (player, session) pair.
func (s *CoachService) UpsertAttendance(ctx context.Context, actor user.User, rec training.AttendanceRecord) (training.AttendanceRecord, error) {
	if err := s.authorize(actor); err != nil {
		return training.AttendanceRecord{}, err
	}
	if err := rec.Validate(); err != nil {
		return training.AttendanceRecord{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, found, err := s.sessions.GetByID(ctx, rec.SessionID); err != nil {
		return training.AttendanceRecord{}, fmt.Errorf("get session: %w", err)
	} else if !found {
		return training.AttendanceRecord{}, fmt.Errorf("%w: session %d", ErrNotFound, rec.SessionID)
	}

	if err := s.attendance.Upsert(ctx, &rec); err != nil {
		return training.AttendanceRecord{}, fmt.Errorf("upsert attendance: %w", err)
	}

	s.logger.InfoContext(ctx, "attendance recorded",
		"player_id", rec.PlayerID, "session_id", rec.SessionID, "status", rec.Status)
	return rec, nil
}

func (s *CoachService) GetAttendanceForSession(ctx context.Context, actor user.User, sessionID int64) ([]training.AttendanceRecord, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.attendance.ListBySession(ctx, sessionID)
}

func (s *CoachService) CreatePlayerPerformance(ctx context.Context, actor user.User, st playerstats.MatchStats) (playerstats.MatchStats, error) {
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

	s.logger.InfoContext(ctx, "performance recorded", "player_id", st.PlayerID, "match_id", st.MatchID)
	return st, nil
}

func (s *CoachService) UpdatePlayerPerformance(ctx context.Context, actor user.User, st playerstats.MatchStats) error {
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

func (s *CoachService) DeletePlayerPerformance(ctx context.Context, actor user.User, statsID int64) error {
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

func (s *CoachService) GetPerformanceForMatch(ctx context.Context, actor user.User, matchID int64) ([]playerstats.MatchStats, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.stats.ListByMatch(ctx, matchID)
}
