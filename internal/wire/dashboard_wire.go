package wire

import (
	"order-management/internal/adaptor"
	"order-management/internal/data/entity"
	"order-management/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler, roles middleware.RoleResolver, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthenticated(middleware.LoginURL))

		r.With(middleware.AdminOnly(roles, log)).Get("/", dashboardHandler.Home)
		r.With(middleware.RequireRole(roles, log, entity.RoleCustomer)).Get("/user", dashboardHandler.UserPage)
	})
}
