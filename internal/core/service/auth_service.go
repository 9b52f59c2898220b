package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/iGEORGE17/blog-api/internal/core/domain"
	"github.com/iGEORGE17/blog-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt counter (Redis). A throttle
// outage degrades open: logins proceed, the failure is only logged.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	codec    ports.TokenCodec
	throttle LoginThrottle
	audit    ports.AuditSink
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, throttle LoginThrottle, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, throttle: throttle, audit: audit, logger: logger}
}

// Register creates an account and returns a freshly issued token. The role
// is always "user"; a client-supplied role is never honoured. Uniqueness of
// email and username rests entirely on the store's indexes, so a concurrent
// duplicate surfaces as domain.ErrUserExists rather than a generic failure.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(created.ID, created.Role)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("token issuance failed after registration")
		return "", nil, err
	}

	s.record(domain.AuditEvent{Actor: created.ID, Action: "user_registered", Timestamp: now})
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return token, created, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the same rejection so the login path reveals
// nothing about which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooMany(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle check failed, proceeding")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	token, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.record(domain.AuditEvent{Actor: user.ID, Action: "login_succeeded", Timestamp: time.Now().UTC()})
	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")

	return token, user, nil
}

func (s *AuthService) noteFailure(ctx context.Context, email string) {
	if s.throttle != nil {
		if err := s.throttle.Fail(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle increment failed")
		}
	}
	s.record(domain.AuditEvent{Actor: email, Action: "login_failed", Timestamp: time.Now().UTC()})
}

func (s *AuthService) record(event domain.AuditEvent) {
	if s.audit != nil {
		s.audit.Enqueue(event)
	}
}
