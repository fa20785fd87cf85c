package service

import (
	"context"
	"errors"
	"log"
	"time"

	"hrbot/internal/model"
	"hrbot/internal/repository"
	"hrbot/pkg/apierror"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const errWrongLoginData = "wrong username or password"

// SessionCleanupInterval is how often stale sessions are swept.
const SessionCleanupInterval = 6 * time.Hour

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService owns the session lifecycle: login, resolve, logout, and the
// periodic cleanup sweep.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*model.Session, error)
	Resolve(ctx context.Context, sessionID string) (*model.User, error)
	Logout(ctx context.Context, sessionID string) error
	RunCleanupLoop(ctx context.Context)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
}

// NewAuthService returns a new instance of AuthService.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) AuthService {
	return &authService{users: users, sessions: sessions}
}

// Login issues a session if and only if the username exists, the user is
// active, and the password hash matches.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*model.Session, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apierror.Unauthorized(errWrongLoginData)
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized(errWrongLoginData)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized(errWrongLoginData)
	}

	now := time.Now()
	session := &model.Session{
		ID:        model.NewSessionID(),
		UserID:    user.ID,
		ExpiredAt: now.Add(model.SessionDuration),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the owning user for a session id. The session row is
// fetched with its user and role eagerly joined, so no follow-up fetch is
// needed. Expiry is checked lazily here; the cleanup sweep catches the rest.
func (s *authService) Resolve(ctx context.Context, sessionID string) (*model.User, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apierror.Unauthorized(errWrongLoginData)
	}
	if session.Expired(time.Now()) {
		return nil, apierror.Unauthorized(errWrongLoginData)
	}
	if session.User == nil || !session.User.IsActive {
		return nil, apierror.Unauthorized(errWrongLoginData)
	}
	return session.User, nil
}

// Logout deletes the session unconditionally. Unknown ids are a no-op.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// RunCleanupLoop sweeps expired and inactive-owner sessions until ctx is
// cancelled. Store errors are logged and the loop continues.
func (s *authService) RunCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(SessionCleanupInterval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *authService) sweep(ctx context.Context) {
	removed, err := s.sessions.DeleteStale(ctx, time.Now())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("session cleanup failed: %v", err)
		return
	}
	log.Printf("session cleanup: %d stale sessions removed", removed)
}

// IsNotFound reports whether err marks a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
