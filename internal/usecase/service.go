package usecase

import (
	"io"

	"order-management/internal/data/repository"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Role      RoleService
	Dashboard DashboardService
	Customer  CustomerService
	Order     OrderService
	Product   ProductService
}

// MediaStore persists uploaded files and returns their relative path.
type MediaStore interface {
	Save(dir, filename string, body io.Reader) (string, error)
	Remove(rel string) error
}

func NewService(repo *repository.Repository, config *utils.Config, media MediaStore, log *zap.Logger) *Service {
	role := NewRoleService(repo.User, config.RoleCache, log)

	return &Service{
		Auth:      NewAuthService(repo, config.Session, role, log),
		Role:      role,
		Dashboard: NewDashboardService(repo, log),
		Customer:  NewCustomerService(repo, media, log),
		Order:     NewOrderService(repo, log),
		Product:   NewProductService(repo.Product, log),
	}
}
