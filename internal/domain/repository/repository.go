package repository

import (
	"context"
	"errors"
	"time"

	"github.com/federalbonds/backend/internal/domain/entity"
)

// Sentinel errors returned by repository implementations. Callers detect
// them with errors.Is and translate to domain errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines database operations over account identities.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository defines database operations over user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, p *entity.Profile) error
}

// ProductRepository defines database operations over the bond catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, products []entity.Product) error
}

// InvestmentRepository defines database operations over investments.
// List methods join product metadata into Investment.Product.
type InvestmentRepository interface {
	Create(ctx context.Context, inv *entity.Investment) error
	GetByID(ctx context.Context, id int64) (*entity.Investment, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Investment, error)
	ListOpenByUser(ctx context.Context, userID string) ([]entity.Investment, error)
	MarkSold(ctx context.Context, id int64, saleDate time.Time) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// AccountRepository covers the two operations that must touch the users and
// profiles tables atomically.
type AccountRepository interface {
	// CreateWithProfile persists a new user and their profile in one
	// transaction, filling in generated IDs and timestamps.
	// Returns ErrDuplicate when the email is already registered.
	CreateWithProfile(ctx context.Context, u *entity.User, p *entity.Profile) error

	// DeleteWithProfile removes the user's profile and then the user itself
	// in one transaction. Returns ErrNotFound when no such user exists.
	DeleteWithProfile(ctx context.Context, userID string) error
}
