package adaptor

import (
	"net/http"

	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	pages   *Pages
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, pages *Pages, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		pages:   pages,
		log:     log,
	}
}

// Home handles GET / (admin dashboard)
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.AdminDashboard(r.Context())
	if err != nil {
		h.pages.handleServiceError(w, r, err, "load admin dashboard")
		return
	}

	h.pages.Render(w, r, http.StatusOK, "dashboard", "Dashboard", nil, dashboard)
}

// UserPage handles GET /user (customer dashboard)
func (h *DashboardHandler) UserPage(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	dashboard, err := h.service.CustomerDashboard(r.Context(), principal.UserID)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "load customer dashboard")
		return
	}

	h.pages.Render(w, r, http.StatusOK, "user", "My orders", nil, dashboard)
}
