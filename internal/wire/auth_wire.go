package wire

import (
	"order-management/internal/adaptor"
	"order-management/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== ANONYMOUS ONLY ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUnauthenticated("/"))

		r.Get("/register", authHandler.RegisterPage)
		r.Post("/register", authHandler.Register)
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.Login)
	})

	// Logout works with or without a session
	r.Get(middleware.LogoutURL, authHandler.Logout)
}
