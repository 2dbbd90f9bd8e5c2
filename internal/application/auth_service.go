package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sessionworks/go-auth-api/internal/domain/entity"
	repo "github.com/sessionworks/go-auth-api/internal/domain/repository"
	"github.com/sessionworks/go-auth-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
)

// Service orchestrates hashing and persistence for the auth flow.
type Service struct {
	Users      repo.UserRepository
	Sessions   repo.SessionRepository
	Logger     *logrus.Logger
	BcryptCost int
	SessionTTL time.Duration
}

func NewService(users repo.UserRepository, sessions repo.SessionRepository, logger *logrus.Logger, bcryptCost int, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &Service{
		Users:      users,
		Sessions:   sessions,
		Logger:     logger,
		BcryptCost: bcryptCost,
		SessionTTL: sessionTTL,
	}
}

// Signup hashes the password and creates the user. Uniqueness is
// enforced by the store constraint only; there is no pre-check.
func (s *Service) Signup(ctx context.Context, email, password, name string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user created")
	}
	return u, nil
}

// Signin verifies the credentials and starts a session for the user.
func (s *Service) Signin(ctx context.Context, email, password string) (*entity.Session, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := helpers.NewSessionToken()
	if err != nil {
		return nil, err
	}
	sess := &entity.Session{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "session_id": sess.ID}).Info("session started")
	}
	return sess, nil
}

// GetUser looks up a user by primary key.
func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
