package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
	"github.com/federalbonds/backend/pkg/helpers"
)

// ProfileService handles viewing, editing, and deleting the caller's profile.
type ProfileService struct {
	Profiles    repo.ProfileRepository
	Investments repo.InvestmentRepository
	Accounts    repo.AccountRepository
	GCS         *storage.Client
	GCSBucket   string
	Redis       *redis.Client
	Logger      *logrus.Logger
}

// ProfileView is the dashboard payload: the profile, the caller's open
// investments and their total. Totals are scoped to the caller; other users'
// positions are never exposed.
type ProfileView struct {
	Profile         *entity.Profile
	OpenInvestments []entity.Investment
	OpenTotal       decimal.Decimal
}

// View returns the caller's dashboard. ErrNotFound means no profile exists
// yet and the client should send the user through registration.
func (s *ProfileService) View(ctx context.Context, userID string) (*ProfileView, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	open, err := s.Investments.ListOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for i := range open {
		total = total.Add(open[i].Amount)
	}
	return &ProfileView{Profile: p, OpenInvestments: open, OpenTotal: total}, nil
}

// UpdateInput carries the editable profile fields. Image is optional; when
// set it is uploaded to object storage under a fresh random name.
type UpdateInput struct {
	FirstName string
	LastName  string
	IsActive  bool

	Image            io.Reader
	ImageFilename    string
	ImageContentType string
}

// Update edits the caller's profile and optionally replaces the profile
// image. Previous image objects are left in place.
func (s *ProfileService) Update(ctx context.Context, userID string, in UpdateInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.IsActive = in.IsActive

	if in.Image != nil {
		url, err := s.uploadImage(ctx, userID, in)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}

	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	s.Logger.WithField("user_id", userID).Info("profile updated")
	return p, nil
}

func (s *ProfileService) uploadImage(ctx context.Context, userID string, in UpdateInput) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(in.ImageFilename))
	objectPath := filepath.ToSlash(filepath.Join("profiles", userID, uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, in.ImageContentType, in.Image)
}

// Delete removes the caller's profile and account. Deletion is blocked while
// any investment rows reference the user, sold ones included.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	if _, err := s.Profiles.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	n, err := s.Investments.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProfileHasInvestments
	}

	if err := s.Accounts.DeleteWithProfile(ctx, userID); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.Del(ctx, helpers.SessionKey(userID)).Err(); err != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("session cleanup failed")
		}
	}
	s.Logger.WithField("user_id", userID).Info("profile and account deleted")
	return nil
}
