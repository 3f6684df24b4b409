package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/futclub/clubmanager/internal/domain/user"
	"github.com/futclub/clubmanager/internal/platform/logging"
	"github.com/futclub/clubmanager/internal/security"
)

// RegisterInput is the incoming payload for creating an account.
type RegisterInput struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=8"`
	Role     user.Role
}

type AuthService struct {
	users    user.Repository
	hasher   security.Hasher
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func NewAuthService(users user.Repository, hasher security.Hasher, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AuthService{
		users:    users,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates a username/password pair. A missing account, an
// inactive account, and a wrong password are indistinguishable to the
// caller: all three report absence, never an error.
func (s *AuthService) Login(ctx context.Context, username, password string) (user.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, false, nil
	}

	u, found, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, false, fmt.Errorf("get user by username: %w", err)
	}
	if !found || !u.Active {
		return user.User{}, false, nil
	}
	if !s.hasher.Verify(u.PasswordHash, password) {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		return user.User{}, false, nil
	}

	at := s.now().UTC()
	if err := s.users.UpdateLastLogin(ctx, u.ID, at); err != nil {
		return user.User{}, false, fmt.Errorf("update last login: %w", err)
	}
	u.LastLogin = &at

	s.logger.InfoContext(ctx, "login succeeded", "user_id", u.ID, "role", u.Role)
	return u, true, nil
}

// Register creates an account. Only administrators may register users.
func (s *AuthService) Register(ctx context.Context, actor user.User, input RegisterInput) (user.User, error) {
	if !actor.HasRole(user.RoleAdministrator) {
		return user.User{}, fmt.Errorf("%w: administrator role required", ErrUnauthorized)
	}

	input.Username = strings.TrimSpace(input.Username)
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok := user.AllRoles[input.Role]; !ok {
		return user.User{}, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, input.Role)
	}

	if _, found, err := s.users.GetByUsername(ctx, input.Username); err != nil {
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	} else if found {
		return user.User{}, fmt.Errorf("%w: username %q is taken", ErrInvalidInput, input.Username)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := user.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		Active:       true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Insert(ctx, &u); err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// ChangePassword replaces a user's credential. A user may change their own
// password with the current one; an administrator may reset anyone's.
func (s *AuthService) ChangePassword(ctx context.Context, actor user.User, userID int64, current, next string) error {
	if actor.ID != userID && !actor.HasRole(user.RoleAdministrator) {
		return fmt.Errorf("%w: cannot change another user's password", ErrUnauthorized)
	}
	if len(next) < 8 {
		return fmt.Errorf("%w: new password must be at least 8 characters", ErrInvalidInput)
	}

	u, found, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if actor.ID == userID && !s.hasher.Verify(u.PasswordHash, current) {
		return fmt.Errorf("%w: current password does not match", ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash
	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed", "user_id", userID)
	return nil
}

// HasAccess reports whether the actor holds one of the given roles.
func (s *AuthService) HasAccess(actor user.User, roles ...user.Role) bool {
	return actor.Active && actor.HasRole(roles...)
}
