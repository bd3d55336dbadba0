package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
)

// SeedProducts is the fixed bond catalog inserted once on an empty table.
// The values are load-bearing: clients know these rows by name.
var SeedProducts = []entity.Product{
	{
		Name:        "Classic Federal Bond 1 Month",
		Duration:    "1 Month",
		Rate:        "2.5% p.a.",
		IsGreen:     false,
		Description: "Short-term investment with fixed interest.",
	},
	{
		Name:        "Classic Federal Bond 12 Months",
		Duration:    "12 Months",
		Rate:        "3.0% p.a.",
		IsGreen:     false,
		Description: "One-year term with fixed interest rate.",
	},
	{
		Name:        "Classic Federal Bond 10 Years",
		Duration:    "10 Years",
		Rate:        "3.5% p.a.",
		IsGreen:     false,
		Description: "Long-term investment with fixed interest.",
	},
	{
		Name:        "Green Federal Bond 6 Months",
		Duration:    "6 Months",
		Rate:        "2.8% p.a.",
		IsGreen:     true,
		Description: "Short-term investment with sustainable focus.",
	},
	{
		Name:        "Green Federal Bond 4 Years",
		Duration:    "4 Years",
		Rate:        "3.2% p.a.",
		IsGreen:     true,
		Description: "Sustainable mid-term investment option.",
	},
}

// CatalogService serves the read-only bond catalog.
type CatalogService struct {
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func (s *CatalogService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Products.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Seed inserts the default products when the table is empty and returns the
// number of rows inserted. Seeding a non-empty table inserts nothing.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	n, err := s.Products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	products := make([]entity.Product, len(SeedProducts))
	copy(products, SeedProducts)
	if err := s.Products.CreateBatch(ctx, products); err != nil {
		return 0, err
	}
	s.Logger.WithField("count", len(products)).Info("seeded product catalog")
	return len(products), nil
}
