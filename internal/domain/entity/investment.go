package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinInvestmentAmount is the minimum amount in EUR for a single investment.
var MinInvestmentAmount = decimal.NewFromInt(100)

// Investment is a user's purchase of an amount against a Product.
// An investment is open until SaleDate is set; once sold it stays sold.
type Investment struct {
	ID           int64
	ProductID    int64
	UserID       string
	Amount       decimal.Decimal
	PurchaseDate time.Time
	SaleDate     *time.Time
	CreatedAt    time.Time

	// Product is populated on joined reads only.
	Product *Product
}

// Sold reports whether the investment has been sold.
func (i *Investment) Sold() bool {
	return i.SaleDate != nil
}
