package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"focustrack/internal/model"
	"focustrack/internal/repository"
)

// AuthService signs users up and in and resolves session tokens.
type AuthService struct {
	users      *repository.UserRepository
	sessions   *repository.SessionRepository
	sessionTTL time.Duration
	hashCost   int
	now        func() time.Time
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// WithHashCost lowers the bcrypt cost, used by tests.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hashCost = cost
	return s
}

// WithClock replaces the clock used for session expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates an account. It does not sign the user in.
func (s *AuthService) Signup(ctx context.Context, email, password, confirm string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if password == "" {
		return nil, invalid("password", "is required")
	}
	if password != confirm {
		return nil, invalid("confirm", "passwords do not match")
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Session, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := s.now()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
	}
	if s.sessionTTL > 0 {
		expires := now.Add(s.sessionTTL)
		session.ExpiresAt = &expires
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, nil, err
	}
	return &session, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Resolve returns the user behind a live session token.
func (s *AuthService) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, ErrNotFound
	}
	return s.users.FindByID(ctx, session.UserID)
}

// PruneExpiredSessions deletes sessions that expired before now.
func (s *AuthService) PruneExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}
