package wire

import (
	"order-management/internal/adaptor"
	"order-management/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler, roles middleware.RoleResolver, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthenticated(middleware.LoginURL))
		r.Use(middleware.AdminOnly(roles, log))

		r.Get("/customer/{id}/create_order", orderHandler.CreatePage)
		r.Post("/customer/{id}/create_order", orderHandler.Create)

		r.Route("/order/{id}", func(r chi.Router) {
			r.Get("/update", orderHandler.UpdatePage)
			r.Post("/update", orderHandler.Update)
			r.Get("/delete", orderHandler.DeletePage)
			r.Post("/delete", orderHandler.Delete)
		})
	})
}
