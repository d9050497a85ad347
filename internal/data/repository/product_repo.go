package repository

import (
	"context"
	"errors"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductRepository is read-only: the catalogue is maintained outside the
// application.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	CountAll(ctx context.Context) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// price is read as text so decimal keeps the exact NUMERIC value.
const selectProductColumns = `
	SELECT id, name, price::text, category, description, tags, created_at
	FROM products
`

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := scanProduct(r.db.QueryRow(ctx, selectProductColumns+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}
	return product, nil
}

// FindAll retrieves a page of products, newest first.
func (r *productRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, selectProductColumns+` ORDER BY created_at DESC, name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to get products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all products limit %d offset %d: %w", limit, offset, err)
	}
	return r.collect(rows)
}

// ListAll returns the whole catalogue ordered by name, for select inputs.
func (r *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, selectProductColumns+` ORDER BY name`)
	if err != nil {
		r.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.collect(rows)
}

func (r *productRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.log.Error("Database error counting products", zap.Error(err))
		return 0, fmt.Errorf("count all products: %w", err)
	}
	return count, nil
}

func (r *productRepository) collect(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		product entity.Product
		price   string
	)
	err := row.Scan(
		&product.ID,
		&product.Name,
		&price,
		&product.Category,
		&product.Description,
		&product.Tags,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}
	return &product, nil
}
