package service

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/richchoi/hotel-system/internal/core/domain"
	"github.com/richchoi/hotel-system/internal/core/ports"
)

// RegistryService implements the user registry and the single process
// session. The session is one in-memory reference: unauthenticated is the
// initial and post-logout state, and nothing survives a restart.
type RegistryService struct {
	repo   ports.UserRepository
	logger zerolog.Logger

	mu      sync.RWMutex
	session *domain.User
}

func NewRegistryService(repo ports.UserRepository, logger zerolog.Logger) *RegistryService {
	return &RegistryService{repo: repo, logger: logger}
}

// Login resolves the session user for a demo role login. A registry match
// wins; otherwise an ephemeral user is synthesized and the registry is left
// untouched. The fallback path is deliberate — login never errors.
func (s *RegistryService) Login(ctx context.Context, role domain.Role) *domain.User {
	if !role.Valid() {
		role = domain.RoleGuest
	}

	user, err := s.repo.FindFirstActiveByRole(ctx, role)
	if err != nil {
		user = synthesizeUser(role)
		s.logger.Info().Str("role", string(role)).Str("user_id", user.ID).Msg("no active registry match, synthesized session user")
	}

	s.setSession(user)
	s.logger.Info().Str("role", string(role)).Str("user_id", user.ID).Msg("session opened")
	return user
}

// Register appends a new GUEST to the registry and auto-logs it in.
func (s *RegistryService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	user := &domain.User{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Role:       domain.RoleGuest,
		AvatarURL:  avatarURL(input.Name),
		IsActive:   true,
		Phone:      input.Phone,
		JoinedDate: time.Now().UTC().Truncate(24 * time.Hour),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.setSession(user)
	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("guest registered")
	return user, nil
}

func (s *RegistryService) Logout(_ context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.logger.Info().Msg("session closed")
}

func (s *RegistryService) CurrentUser(_ context.Context) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	clone := *s.session
	return &clone
}

func (s *RegistryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// ToggleUserStatus flips is_active on the matching entry. Unknown ids are
// silent no-ops per the lookup-miss contract.
func (s *RegistryService) ToggleUserStatus(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug().Str("user_id", id).Msg("toggle on unknown user ignored")
		return nil
	}
	if err := s.repo.SetActive(ctx, id, !user.IsActive); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Bool("is_active", !user.IsActive).Msg("user status toggled")
	return nil
}

// DeleteUser removes a registry entry. The ADMIN guard is enforced here so
// the invariant holds regardless of what the caller's UI hides.
func (s *RegistryService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug().Str("user_id", id).Msg("delete of unknown user ignored")
		return nil
	}
	if user.Role == domain.RoleAdmin {
		return domain.ErrAdminUndeletable
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *RegistryService) setSession(user *domain.User) {
	clone := *user
	s.mu.Lock()
	s.session = &clone
	s.mu.Unlock()
}

// synthesizeUser builds the fixed demo identity for a role login that found
// no active registry entry. The result is session-only.
func synthesizeUser(role domain.Role) *domain.User {
	name, email := "Valued Guest", "guest@richchoi.com"
	if role == domain.RoleAdmin {
		name, email = "Rich Choi Administrator", "admin@richchoi.com"
	}
	return &domain.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Role:       role,
		AvatarURL:  avatarURL(name),
		IsActive:   true,
		JoinedDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0F172A&color=fff"
}
