package usecase

import (
	"context"
	"fmt"

	"order-management/internal/data/repository"
	"order-management/internal/dto/request"
	"order-management/internal/dto/response"

	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	// ListProducts returns the whole catalogue for the order form selects.
	ListProducts(ctx context.Context) ([]response.ProductResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log,
	}
}

func (s *productService) GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	req.Normalize()

	products, err := s.productRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	total, err := s.productRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	return response.NewPaginatedResponse(response.ProductsToResponse(products), req.Page, req.Limit(), total), nil
}

func (s *productService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return response.ProductsToResponse(products), nil
}
