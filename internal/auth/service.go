// Package auth implements admin login with bcrypt password checks and
// opaque bearer-token sessions with a fixed TTL.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/lumina-store/internal/pkg/clock"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// Service issues and validates admin sessions.
type Service struct {
	store Store
	clock clock.Clock
	ttl   time.Duration
}

// NewService creates a new auth service.
func NewService(store Store, clk clock.Clock, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		store: store,
		clock: clk,
		ttl:   ttl,
	}
}

// Login verifies the credentials and issues a new session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	hash, err := s.store.GetPasswordHash(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	session := &Session{
		Token:     uuid.New().String(),
		Email:     email,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.store.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return session, nil
}

// Logout invalidates a session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

// Authenticate resolves a bearer token to the admin email it belongs to.
// Expired sessions are deleted on sight.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	session, err := s.store.GetSession(ctx, token)
	if err != nil {
		return "", err
	}

	if !s.clock.Now().Before(session.ExpiresAt) {
		_ = s.store.DeleteSession(ctx, token)
		return "", ErrSessionExpired
	}

	return session.Email, nil
}

// EnsureAdmin hashes the password and writes the admin user row. Used at
// provisioning time to seed or rotate the admin account.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.store.UpsertAdmin(ctx, email, string(hash), s.clock.Now())
}
