package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
)

// InvestmentService handles buying and selling investments with ownership
// enforcement.
type InvestmentService struct {
	Investments repo.InvestmentRepository
	Products    repo.ProductRepository
	Logger      *logrus.Logger
}

// today returns the current UTC calendar date.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ListMine returns all of the caller's investments, sold and open, with
// product metadata attached.
func (s *InvestmentService) ListMine(ctx context.Context, userID string) ([]entity.Investment, error) {
	return s.Investments.ListByUser(ctx, userID)
}

// Create buys an amount of the given product for the caller. The product must
// exist; dangling product references are rejected rather than stored.
func (s *InvestmentService) Create(ctx context.Context, userID string, productID int64, amount decimal.Decimal) (*entity.Investment, error) {
	if amount.LessThan(entity.MinInvestmentAmount) {
		return nil, ErrAmountTooLow
	}
	product, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	inv := &entity.Investment{
		ProductID:    product.ID,
		UserID:       userID,
		Amount:       amount,
		PurchaseDate: today(),
		Product:      product,
	}
	if err := s.Investments.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{
		"user_id":       userID,
		"investment_id": inv.ID,
		"product_id":    product.ID,
	}).Info("investment created")
	return inv, nil
}

// Sell marks the caller's investment as sold. Selling is idempotent: an
// already sold investment keeps its original sale date and no error is
// returned. Selling someone else's investment fails with ErrNotOwner.
func (s *InvestmentService) Sell(ctx context.Context, userID string, id int64) (*entity.Investment, error) {
	inv, err := s.Investments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if inv.UserID != userID {
		return nil, ErrNotOwner
	}
	if inv.Sold() {
		return inv, nil
	}

	saleDate := today()
	if err := s.Investments.MarkSold(ctx, inv.ID, saleDate); err != nil {
		return nil, err
	}
	inv.SaleDate = &saleDate
	s.Logger.WithFields(logrus.Fields{
		"user_id":       userID,
		"investment_id": inv.ID,
	}).Info("investment sold")
	return inv, nil
}
