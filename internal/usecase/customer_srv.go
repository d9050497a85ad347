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
	"order-management/pkg/media"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const profilePicDir = "profile_pics"

type CustomerService interface {
	// GetAccount returns the customer profile linked to userID.
	GetAccount(ctx context.Context, userID uuid.UUID) (*response.CustomerResponse, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, req *request.CustomerRequest) (*response.CustomerResponse, error)
	GetCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	// GetCustomerDetail returns one customer with its orders narrowed by
	// filter. An invalid filter is reported in FilterErrors and ignored.
	GetCustomerDetail(ctx context.Context, customerID string, filter *request.OrderFilterRequest) (*CustomerDetail, error)
}

// CustomerDetail is the customer page plus any filter input errors.
type CustomerDetail struct {
	response.CustomerDetailResponse
	FilterErrors map[string]string
}

type customerService struct {
	repo  *repository.Repository
	media MediaStore
	log   *zap.Logger
}

func NewCustomerService(repo *repository.Repository, media MediaStore, log *zap.Logger) CustomerService {
	return &customerService{
		repo:  repo,
		media: media,
		log:   log,
	}
}

func (s *customerService) GetAccount(ctx context.Context, userID uuid.UUID) (*response.CustomerResponse, error) {
	customer, err := s.findByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) UpdateAccount(ctx context.Context, userID uuid.UUID, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	customer, err := s.findByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var oldPic *string
	if req.ProfilePic != nil {
		rel, err := s.media.Save(profilePicDir, req.ProfilePic.Filename, req.ProfilePic.Body)
		if errors.Is(err, media.ErrUnsupportedType) {
			return nil, fieldError("profile_pic", "Upload a valid image.")
		}
		if err != nil {
			s.log.Error("Failed to store profile picture", zap.Error(err))
			return nil, fmt.Errorf("failed to store profile picture: %w", err)
		}
		oldPic = customer.ProfilePic
		customer.ProfilePic = &rel
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.UpdatedAt = time.Now()

	if err := s.repo.Customer.Update(ctx, customer); err != nil {
		if req.ProfilePic != nil {
			s.removeMedia(*customer.ProfilePic)
		}
		if errors.Is(err, repository.ErrNoRows) {
			return nil, notFound("customer", customer.ID.String())
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	if oldPic != nil && *oldPic != "" {
		s.removeMedia(*oldPic)
	}

	s.log.Info("Customer account updated", zap.String("customer_id", customer.ID.String()))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	customer, err := s.findByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomerDetail(ctx context.Context, customerID string, filter *request.OrderFilterRequest) (*CustomerDetail, error) {
	customer, err := s.findByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Order.CountByStatus(ctx, &customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	orderFilter, filterErrs := parseOrderFilter(filter)

	orders, err := s.repo.Order.FindByCustomerID(ctx, customer.ID, orderFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return &CustomerDetail{
		CustomerDetailResponse: response.CustomerDetailResponse{
			Customer:    response.CustomerToResponse(customer),
			Orders:      response.OrdersToResponse(orders),
			OrdersCount: counts.Total,
		},
		FilterErrors: filterErrs,
	}, nil
}

func (s *customerService) findByID(ctx context.Context, customerID string) (*entity.Customer, error) {
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
	return customer, nil
}

func (s *customerService) findByUser(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, notFound("customer for user", userID.String())
	}
	return customer, nil
}

func (s *customerService) removeMedia(rel string) {
	if err := s.media.Remove(rel); err != nil {
		s.log.Warn("Failed to remove media file", zap.Error(err), zap.String("path", rel))
	}
}

const filterDateLayout = "2006-01-02"

// parseOrderFilter converts the query form into a repository filter. Dates
// are calendar days in UTC; the end date is inclusive.
func parseOrderFilter(req *request.OrderFilterRequest) (entity.OrderFilter, map[string]string) {
	var filter entity.OrderFilter
	if req == nil {
		return filter, nil
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return filter, errs
	}

	filter.Status = entity.OrderStatus(req.Status)
	if req.ProductID != "" {
		filter.ProductID = uuid.MustParse(req.ProductID)
	}
	if req.StartDate != "" {
		start, _ := time.ParseInLocation(filterDateLayout, req.StartDate, time.UTC)
		filter.StartDate = &start
	}
	if req.EndDate != "" {
		end, _ := time.ParseInLocation(filterDateLayout, req.EndDate, time.UTC)
		end = end.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	return filter, nil
}
