package wire

import (
	"order-management/internal/adaptor"
	"order-management/internal/data/entity"
	"order-management/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler, roles middleware.RoleResolver, log *zap.Logger) {
	// ==================== CUSTOMER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthenticated(middleware.LoginURL))
		r.Use(middleware.RequireRole(roles, log, entity.RoleCustomer))

		r.Get("/account", customerHandler.AccountSettings)
		r.Post("/account", customerHandler.UpdateAccount)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthenticated(middleware.LoginURL))
		r.Use(middleware.AdminOnly(roles, log))

		r.Get("/customer/{id}", customerHandler.Detail)
	})
}
