package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/federalbonds/backend/internal/domain/entity"
	"github.com/federalbonds/backend/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, duration, rate, is_green, description
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Duration, &p.Rate, &p.IsGreen, &p.Description); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p := &entity.Product{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, duration, rate, is_green, description
		FROM products
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Duration, &p.Rate, &p.IsGreen, &p.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n)
	return n, err
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []entity.Product) error {
	batch := &pgx.Batch{}
	for i := range products {
		batch.Queue(`
			INSERT INTO products (name, duration, rate, is_green, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, products[i].Name, products[i].Duration, products[i].Rate, products[i].IsGreen, products[i].Description)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()
	for i := range products {
		if err := br.QueryRow().Scan(&products[i].ID); err != nil {
			return err
		}
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
