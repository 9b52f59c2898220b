package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

// UserService implements profile reads/edits and the admin account
// operations. Policy checks run before any repository access.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

func (s *UserService) CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return s.repo.FindByID(ctx, identity.UserID)
}

// UpdateProfile applies a partial edit to the caller's own record. The
// target is always the authenticated identity; no id is taken from the
// client. A duplicate email/username surfaces as domain.ErrUserExists.
func (s *UserService) UpdateProfile(ctx context.Context, identity domain.Identity, patch ports.ProfilePatch) error {
	if patch.Username == nil && patch.Email == nil {
		return domain.ErrEmptyUpdate
	}
	return s.repo.UpdateProfile(ctx, identity.UserID, patch)
}

func (s *UserService) ListUsers(ctx context.Context, identity domain.Identity) ([]*domain.User, error) {
	if err := domain.CanListUsers(identity); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *UserService) DeleteUser(ctx context.Context, identity domain.Identity, targetID string) error {
	if err := domain.CanDeleteUser(identity, targetID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	if s.audit != nil {
		s.audit.Enqueue(domain.AuditEvent{
			Actor:     identity.UserID,
			Action:    "user_deleted",
			Target:    targetID,
			Timestamp: time.Now().UTC(),
		})
	}
	s.logger.Info().Str("admin_id", identity.UserID).Str("target_id", targetID).Msg("user deleted")

	return nil
}
