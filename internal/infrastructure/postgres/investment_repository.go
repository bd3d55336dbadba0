package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/federalbonds/backend/internal/domain/entity"
	"github.com/federalbonds/backend/internal/domain/repository"
)

type InvestmentRepository struct {
	pool *pgxpool.Pool
}

func NewInvestmentRepository(pool *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{pool: pool}
}

const investmentJoinSelect = `
	SELECT i.id, i.product_id, i.user_id, i.amount, i.purchase_date, i.sale_date, i.created_at,
	       p.id, p.name, p.duration, p.rate, p.is_green, p.description
	FROM investments i
	JOIN products p ON p.id = i.product_id
`

func scanInvestmentJoin(row pgx.Row) (*entity.Investment, error) {
	inv := &entity.Investment{Product: &entity.Product{}}
	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.UserID, &inv.Amount, &inv.PurchaseDate, &inv.SaleDate, &inv.CreatedAt,
		&inv.Product.ID, &inv.Product.Name, &inv.Product.Duration, &inv.Product.Rate,
		&inv.Product.IsGreen, &inv.Product.Description,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *entity.Investment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO investments (product_id, user_id, amount, purchase_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, inv.ProductID, inv.UserID, inv.Amount, inv.PurchaseDate)
	return row.Scan(&inv.ID, &inv.CreatedAt)
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id int64) (*entity.Investment, error) {
	row := r.pool.QueryRow(ctx, investmentJoinSelect+` WHERE i.id = $1`, id)
	inv, err := scanInvestmentJoin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvestmentRepository) ListByUser(ctx context.Context, userID string) ([]entity.Investment, error) {
	return r.list(ctx, investmentJoinSelect+` WHERE i.user_id = $1 ORDER BY i.id`, userID)
}

func (r *InvestmentRepository) ListOpenByUser(ctx context.Context, userID string) ([]entity.Investment, error) {
	return r.list(ctx, investmentJoinSelect+` WHERE i.user_id = $1 AND i.sale_date IS NULL ORDER BY i.id`, userID)
}

func (r *InvestmentRepository) list(ctx context.Context, sql string, args ...any) ([]entity.Investment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investments []entity.Investment
	for rows.Next() {
		inv, err := scanInvestmentJoin(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, *inv)
	}
	return investments, rows.Err()
}

// MarkSold sets the sale date on an open investment. Selling an already sold
// investment is a no-op at the service layer, so a zero row count here means
// the investment disappeared.
func (r *InvestmentRepository) MarkSold(ctx context.Context, id int64, saleDate time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE investments
		SET sale_date = $1
		WHERE id = $2 AND sale_date IS NULL
	`, saleDate, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *InvestmentRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM investments WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

var _ repository.InvestmentRepository = (*InvestmentRepository)(nil)
