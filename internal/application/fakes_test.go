package application

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// memStore is a shared in-memory backing store so that the per-interface
// fakes observe each other's writes, like repositories over one database.
type memStore struct {
	users       map[string]*entity.User
	profiles    map[string]*entity.Profile // keyed by user id
	products    map[int64]*entity.Product
	investments map[int64]*entity.Investment
	nextUserID  int
	nextProdID  int64
	nextInvID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*entity.User{},
		profiles:    map[string]*entity.Profile{},
		products:    map[int64]*entity.Product{},
		investments: map[int64]*entity.Investment{},
	}
}

type memAccountRepo struct{ s *memStore }

func (r *memAccountRepo) CreateWithProfile(_ context.Context, u *entity.User, p *entity.Profile) error {
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repo.ErrDuplicate
		}
	}
	r.s.nextUserID++
	u.ID = fmt.Sprintf("user-%d", r.s.nextUserID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = u

	p.ID = fmt.Sprintf("profile-%d", r.s.nextUserID)
	p.UserID = u.ID
	p.CreatedAt = u.CreatedAt
	p.UpdatedAt = u.CreatedAt
	r.s.profiles[u.ID] = p
	return nil
}

func (r *memAccountRepo) DeleteWithProfile(_ context.Context, userID string) error {
	if _, ok := r.s.users[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.profiles, userID)
	delete(r.s.users, userID)
	return nil
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

type memProfileRepo struct{ s *memStore }

func (r *memProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	stored, ok := r.s.profiles[p.UserID]
	if !ok || stored.ID != p.ID {
		return repo.ErrNotFound
	}
	cp := *p
	r.s.profiles[p.UserID] = &cp
	return nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.s.products))
	for id := int64(1); id <= r.s.nextProdID; id++ {
		if p, ok := r.s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.products)), nil
}

func (r *memProductRepo) CreateBatch(_ context.Context, products []entity.Product) error {
	for i := range products {
		r.s.nextProdID++
		products[i].ID = r.s.nextProdID
		cp := products[i]
		r.s.products[cp.ID] = &cp
	}
	return nil
}

type memInvestmentRepo struct{ s *memStore }

func (r *memInvestmentRepo) Create(_ context.Context, inv *entity.Investment) error {
	r.s.nextInvID++
	inv.ID = r.s.nextInvID
	inv.CreatedAt = time.Now()
	cp := *inv
	r.s.investments[cp.ID] = &cp
	return nil
}

func (r *memInvestmentRepo) GetByID(_ context.Context, id int64) (*entity.Investment, error) {
	inv, ok := r.s.investments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *inv
	if p, ok := r.s.products[cp.ProductID]; ok {
		pc := *p
		cp.Product = &pc
	}
	return &cp, nil
}

func (r *memInvestmentRepo) ListByUser(_ context.Context, userID string) ([]entity.Investment, error) {
	return r.list(userID, false), nil
}

func (r *memInvestmentRepo) ListOpenByUser(_ context.Context, userID string) ([]entity.Investment, error) {
	return r.list(userID, true), nil
}

func (r *memInvestmentRepo) list(userID string, openOnly bool) []entity.Investment {
	var out []entity.Investment
	for id := int64(1); id <= r.s.nextInvID; id++ {
		inv, ok := r.s.investments[id]
		if !ok || inv.UserID != userID {
			continue
		}
		if openOnly && inv.Sold() {
			continue
		}
		cp := *inv
		if p, ok := r.s.products[cp.ProductID]; ok {
			pc := *p
			cp.Product = &pc
		}
		out = append(out, cp)
	}
	return out
}

func (r *memInvestmentRepo) MarkSold(_ context.Context, id int64, saleDate time.Time) error {
	inv, ok := r.s.investments[id]
	if !ok || inv.Sold() {
		return repo.ErrNotFound
	}
	d := saleDate
	inv.SaleDate = &d
	return nil
}

func (r *memInvestmentRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, inv := range r.s.investments {
		if inv.UserID == userID {
			n++
		}
	}
	return n, nil
}

var (
	_ repo.AccountRepository    = (*memAccountRepo)(nil)
	_ repo.UserRepository       = (*memUserRepo)(nil)
	_ repo.ProfileRepository    = (*memProfileRepo)(nil)
	_ repo.ProductRepository    = (*memProductRepo)(nil)
	_ repo.InvestmentRepository = (*memInvestmentRepo)(nil)
)
