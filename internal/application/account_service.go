package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
	"github.com/federalbonds/backend/pkg/helpers"
	"github.com/federalbonds/backend/pkg/mailer"
)

// TokenPair is an access/refresh token set issued at login.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// AccountService covers registration, authentication and session lifecycle.
type AccountService struct {
	Accounts    repo.AccountRepository
	Users       repo.UserRepository
	Profiles    repo.ProfileRepository
	JWT         *helpers.JWTManager
	RememberTTL time.Duration
	Redis       *redis.Client
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

// RegisterInput is pre-validated by the handler; names and password policy
// are enforced at binding time.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a user and their profile atomically and queues a welcome
// email. Returns ErrEmailTaken when the address is already registered, in
// which case no rows are created.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*entity.User, *entity.Profile, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	u := &entity.User{Email: in.Email, Password: hash}
	p := &entity.Profile{FirstName: in.FirstName, LastName: in.LastName, IsActive: true}

	if err := s.Accounts.CreateWithProfile(ctx, u, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")

	// Fire and forget: registration never fails because mail is down.
	if s.Pub != nil && s.MailEnabled {
		job := mailer.NewWelcomeJob(u.Email, p.FullName())
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
		}
	}
	return u, p, nil
}

// Login validates credentials and issues a session. remember stretches the
// refresh token and session lifetime to the configured remember-me duration.
func (s *AccountService) Login(ctx context.Context, email, password string, remember bool) (*entity.User, TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.IssueTokens(ctx, u, remember)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// IssueTokens generates the access/refresh pair and records the session in Redis.
func (s *AccountService) IssueTokens(ctx context.Context, u *entity.User, remember bool) (TokenPair, error) {
	refreshTTL := s.JWT.RefreshTTL
	if remember && s.RememberTTL > refreshTTL {
		refreshTTL = s.RememberTTL
	}

	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := helpers.SessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"remember":   remember,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, refreshTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("redis session write failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the token pair for a valid refresh token with a live session.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	remember := false
	if s.Redis != nil {
		data, err := s.Redis.HGetAll(ctx, helpers.SessionKey(u.ID)).Result()
		if err != nil || len(data) == 0 {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		remember = data["remember"] == "1" || data["remember"] == "true"
	}
	pair, err := s.IssueTokens(ctx, u, remember)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Logout drops the redis session. Cookie clearing happens in the handler.
func (s *AccountService) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Del(ctx, helpers.SessionKey(userID)).Err()
}
