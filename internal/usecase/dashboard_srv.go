package usecase

import (
	"context"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecentOrdersLimit is how many orders the admin dashboard lists.
const RecentOrdersLimit = 5

type DashboardService interface {
	AdminDashboard(ctx context.Context) (*response.AdminDashboardResponse, error)
	// CustomerDashboard summarises the orders of the customer linked to userID.
	CustomerDashboard(ctx context.Context, userID uuid.UUID) (*response.CustomerDashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log,
	}
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*response.AdminDashboardResponse, error) {
	counts, err := s.repo.Order.CountByStatus(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalCustomers, err := s.repo.Customer.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	orders, err := s.repo.Order.FindRecent(ctx, RecentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent orders: %w", err)
	}

	customers, err := s.repo.Customer.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	customerResponses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = response.CustomerToResponse(customer)
	}

	return &response.AdminDashboardResponse{
		StatusSummary:  response.StatusSummaryFromCounts(counts),
		TotalCustomers: totalCustomers,
		Orders:         response.OrdersToResponse(orders),
		Customers:      customerResponses,
	}, nil
}

func (s *dashboardService) CustomerDashboard(ctx context.Context, userID uuid.UUID) (*response.CustomerDashboardResponse, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		s.log.Warn("Customer principal without profile", zap.String("user_id", userID.String()))
		return nil, notFound("customer for user", userID.String())
	}

	counts, err := s.repo.Order.CountByStatus(ctx, &customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	orders, err := s.repo.Order.FindByCustomerID(ctx, customer.ID, entity.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return &response.CustomerDashboardResponse{
		StatusSummary: response.StatusSummaryFromCounts(counts),
		Orders:        response.OrdersToResponse(orders),
	}, nil
}
