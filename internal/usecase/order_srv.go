package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*response.OrderResponse, error)
	// CreateOrders validates every non-blank row and stores them all, or
	// stores nothing and returns a *ValidationError keyed "<field>_<row>".
	CreateOrders(ctx context.Context, customerID string, req *request.CreateOrdersRequest) ([]response.OrderResponse, error)
	// UpdateOrder leaves the order untouched when req is invalid.
	UpdateOrder(ctx context.Context, orderID string, req *request.OrderRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) CreateOrders(ctx context.Context, customerID string, req *request.CreateOrdersRequest) ([]response.OrderResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, notFound("customer", customerID)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, notFound("customer", customerID)
	}

	errs := make(map[string]string)
	var (
		rows     []request.OrderRowRequest
		products []*entity.Product
	)
	for _, row := range req.Rows {
		row.ProductID = strings.TrimSpace(row.ProductID)
		row.Note = strings.TrimSpace(row.Note)
		if row.Blank() {
			continue
		}

		product, rowErrs, err := s.validateOrder(ctx, &row.OrderRequest)
		if err != nil {
			return nil, err
		}
		for field, msg := range rowErrs {
			errs[fmt.Sprintf("%s_%d", field, row.Row)] = msg
		}
		rows = append(rows, row)
		products = append(products, product)
	}

	if len(errs) > 0 {
		s.log.Warn("Create orders validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	now := s.now()
	orders := make([]*entity.Order, len(rows))
	details := make([]*entity.OrderDetail, len(rows))
	for i, row := range rows {
		orders[i] = &entity.Order{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			CustomerID: customer.ID,
			ProductID:  products[i].ID,
			Status:     entity.OrderStatus(row.Status),
			Note:       row.Note,
		}
		details[i] = &entity.OrderDetail{
			Order:        *orders[i],
			CustomerName: customer.Name,
			ProductName:  products[i].Name,
		}
	}

	if len(orders) > 0 {
		if err := s.repo.Order.CreateMany(ctx, orders); err != nil {
			return nil, fmt.Errorf("failed to create orders: %w", err)
		}
	}

	s.log.Info("Orders created",
		zap.String("customer_id", customer.ID.String()),
		zap.Int("count", len(orders)))

	return response.OrdersToResponse(details), nil
}

func (s *orderService) UpdateOrder(ctx context.Context, orderID string, req *request.OrderRequest) (*response.OrderResponse, error) {
	existing, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	req.ProductID = strings.TrimSpace(req.ProductID)
	req.Note = strings.TrimSpace(req.Note)

	product, errs, err := s.validateOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		s.log.Warn("Update order validation failed",
			zap.String("order_id", orderID),
			zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	updated := existing.Order
	updated.ProductID = product.ID
	updated.Status = entity.OrderStatus(req.Status)
	updated.Note = req.Note
	updated.UpdatedAt = s.now()

	if err := s.repo.Order.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("order", orderID)
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.log.Info("Order updated",
		zap.String("order_id", updated.ID.String()),
		zap.String("status", string(updated.Status)))

	resp := response.OrderToResponse(&entity.OrderDetail{
		Order:        updated,
		CustomerName: existing.CustomerName,
		ProductName:  product.Name,
	})
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return notFound("order", orderID)
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return notFound("order", orderID)
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.log.Info("Order deleted", zap.String("order_id", orderID))
	return nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*entity.OrderDetail, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, notFound("order", orderID)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, notFound("order", orderID)
	}
	return order, nil
}

// validateOrder checks the form fields and that the product exists. It
// returns the product when the request is valid.
func (s *orderService) validateOrder(ctx context.Context, req *request.OrderRequest) (*entity.Product, map[string]string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, errs, nil
	}

	product, err := s.repo.Product.FindByID(ctx, uuid.MustParse(req.ProductID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, map[string]string{"product": "Select a valid choice"}, nil
	}
	return product, nil, nil
}
