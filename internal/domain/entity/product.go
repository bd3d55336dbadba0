package entity

// Product is a fixed-terms bond offering. Rows are seeded once at startup
// and never mutated afterwards.
type Product struct {
	ID          int64
	Name        string
	Duration    string
	Rate        string
	IsGreen     bool
	Description string
}
