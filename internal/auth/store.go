package auth

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/lumina-store/internal/models/m_admin_user"
	"github.com/light-bringer/lumina-store/internal/models/m_session"
	"github.com/light-bringer/lumina-store/internal/pkg/committer"
)

// Session is an authenticated admin session.
type Session struct {
	Token     string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Store persists admin credentials and sessions.
type Store interface {
	GetPasswordHash(ctx context.Context, email string) (string, error)
	InsertSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	UpsertAdmin(ctx context.Context, email, passwordHash string, now time.Time) error
}

// SpannerStore keeps sessions and admin users in Spanner tables.
type SpannerStore struct {
	client       *spanner.Client
	committer    *committer.Committer
	sessionModel *m_session.Model
	adminModel   *m_admin_user.Model
}

// NewSpannerStore creates a new SpannerStore.
func NewSpannerStore(client *spanner.Client) *SpannerStore {
	return &SpannerStore{
		client:       client,
		committer:    committer.NewCommitter(client),
		sessionModel: m_session.NewModel(),
		adminModel:   m_admin_user.NewModel(),
	}
}

// GetPasswordHash returns the stored bcrypt hash for an admin email.
// Unknown emails map to ErrInvalidCredentials.
func (s *SpannerStore) GetPasswordHash(ctx context.Context, email string) (string, error) {
	row, err := s.client.Single().ReadRow(ctx, m_admin_user.TableName, spanner.Key{email}, []string{m_admin_user.PasswordHash})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to read admin user: %w", err)
	}

	var hash string
	if err := row.Column(0, &hash); err != nil {
		return "", fmt.Errorf("failed to parse password hash: %w", err)
	}
	return hash, nil
}

// InsertSession persists a new session row.
func (s *SpannerStore) InsertSession(ctx context.Context, session *Session) error {
	plan := committer.NewPlan()
	plan.Add(s.sessionModel.InsertMut(&m_session.Data{
		Token:     session.Token,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}))
	return s.committer.Apply(ctx, plan)
}

// GetSession loads a session by token.
func (s *SpannerStore) GetSession(ctx context.Context, token string) (*Session, error) {
	row, err := s.client.Single().ReadRow(ctx, m_session.TableName, spanner.Key{token}, m_session.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var data m_session.Data
	if err := row.Columns(&data.Token, &data.Email, &data.ExpiresAt, &data.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return &Session{
		Token:     data.Token,
		Email:     data.Email,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}, nil
}

// DeleteSession removes a session row. Deleting a missing token is a no-op.
func (s *SpannerStore) DeleteSession(ctx context.Context, token string) error {
	plan := committer.NewPlan()
	plan.Add(s.sessionModel.DeleteMut(token))
	return s.committer.Apply(ctx, plan)
}

// UpsertAdmin writes an admin user row, replacing any existing hash.
func (s *SpannerStore) UpsertAdmin(ctx context.Context, email, passwordHash string, now time.Time) error {
	plan := committer.NewPlan()
	plan.Add(s.adminModel.InsertMut(&m_admin_user.Data{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}))
	return s.committer.Apply(ctx, plan)
}
