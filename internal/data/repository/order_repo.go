package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"order-management/internal/data/entity"
	"order-management/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateMany inserts all orders in one transaction: either every order
	// is stored or none is.
	CreateMany(ctx context.Context, orders []*entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.OrderDetail, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, filter entity.OrderFilter) ([]*entity.OrderDetail, error)
	// CountByStatus counts all orders, or only one customer's when
	// customerID is non-nil.
	CountByStatus(ctx context.Context, customerID *uuid.UUID) (entity.OrderStatusCounts, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const selectOrderDetailColumns = `
	SELECT o.id, o.customer_id, o.product_id, o.status, o.note, o.created_at, o.updated_at,
	       c.name, p.name
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN products p ON p.id = o.product_id
`

func (r *orderRepository) CreateMany(ctx context.Context, orders []*entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, product_id, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, order := range orders {
			_, err := tx.Exec(ctx, query,
				order.ID,
				order.CustomerID,
				order.ProductID,
				order.Status,
				order.Note,
				order.CreatedAt,
				order.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert order %s: %w", order.ID.String(), err)
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to create orders",
			zap.Error(err),
			zap.Int("count", len(orders)),
		)
		return fmt.Errorf("create %d orders: %w", len(orders), err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error) {
	order, err := scanOrderDetail(r.db.QueryRow(ctx, selectOrderDetailColumns+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}
	return order, nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.OrderDetail, error) {
	rows, err := r.db.Query(ctx, selectOrderDetailColumns+` ORDER BY o.created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Error("Failed to get recent orders", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("find recent orders: %w", err)
	}
	return r.collect(rows)
}

func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, filter entity.OrderFilter) ([]*entity.OrderDetail, error) {
	where, args := buildOrderFilter(customerID, filter)

	query := selectOrderDetailColumns + ` WHERE ` + where + ` ORDER BY o.created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get customer orders",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find orders of customer %s: %w", customerID.String(), err)
	}
	return r.collect(rows)
}

// buildOrderFilter returns the WHERE clause (without the keyword) and its
// positional arguments.
func buildOrderFilter(customerID uuid.UUID, filter entity.OrderFilter) (string, []any) {
	conds := []string{"o.customer_id = $1"}
	args := []any{customerID}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != "" {
		add("o.status = $%d", filter.Status)
	}
	if filter.ProductID != uuid.Nil {
		add("o.product_id = $%d", filter.ProductID)
	}
	if filter.StartDate != nil {
		add("o.created_at >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("o.created_at < $%d", *filter.EndDate)
	}

	return strings.Join(conds, " AND "), args
}

func (r *orderRepository) CountByStatus(ctx context.Context, customerID *uuid.UUID) (entity.OrderStatusCounts, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2),
		       COUNT(*) FILTER (WHERE status = $3)
		FROM orders
		WHERE $4::uuid IS NULL OR customer_id = $4
	`

	var counts entity.OrderStatusCounts
	err := r.db.QueryRow(ctx, query,
		entity.OrderStatusPending,
		entity.OrderStatusOutForDelivery,
		entity.OrderStatusDelivered,
		customerID,
	).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.OutForDelivery,
		&counts.Delivered,
	)
	if err != nil {
		r.log.Error("Database error counting orders", zap.Error(err))
		return entity.OrderStatusCounts{}, fmt.Errorf("count orders by status: %w", err)
	}

	return counts, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET product_id = $2, status = $3, note = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.ProductID,
		order.Status,
		order.Note,
		order.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("update order %s: %w", order.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update order %s: %w", order.ID.String(), ErrNoRows)
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete order %s: %w", id.String(), ErrNoRows)
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}

func (r *orderRepository) collect(rows pgx.Rows) ([]*entity.OrderDetail, error) {
	defer rows.Close()

	var orders []*entity.OrderDetail
	for rows.Next() {
		order, err := scanOrderDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func scanOrderDetail(row pgx.Row) (*entity.OrderDetail, error) {
	var order entity.OrderDetail
	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.ProductID,
		&order.Status,
		&order.Note,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.CustomerName,
		&order.ProductName,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
