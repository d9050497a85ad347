package wire

import (
	"order-management/internal/adaptor"
	"order-management/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, roles middleware.RoleResolver, log *zap.Logger) {
	r.With(
		middleware.RequireAuthenticated(middleware.LoginURL),
		middleware.AdminOnly(roles, log),
	).Get("/products", productHandler.List)
}
