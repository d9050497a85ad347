package adaptor

import (
	"errors"
	"net/http"

	"order-management/internal/usecase"
	"order-management/internal/view"
	"order-management/pkg/utils"
	"order-management/pkg/websession"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Customer  *CustomerHandler
	Order     *OrderHandler
	Product   *ProductHandler
	Pages     *Pages
}

func NewHandler(
	service *usecase.Service,
	renderer *view.Renderer,
	sessions *websession.Manager,
	config *utils.Config,
	log *zap.Logger,
) *Handler {
	pages := NewPages(renderer, sessions, log)

	return &Handler{
		Auth:      NewAuthHandler(service.Auth, pages, sessions, log),
		Dashboard: NewDashboardHandler(service.Dashboard, pages, log),
		Customer:  NewCustomerHandler(service.Customer, service.Product, pages, config.Media.MaxUploadBytes(), log),
		Order:     NewOrderHandler(service.Order, service.Customer, service.Product, pages, log),
		Product:   NewProductHandler(service.Product, pages, log),
		Pages:     pages,
	}
}

// Pages renders templates with the per-request chrome (principal, flashes)
// filled in, and maps service errors onto error pages.
type Pages struct {
	view     *view.Renderer
	sessions *websession.Manager
	log      *zap.Logger
}

func NewPages(renderer *view.Renderer, sessions *websession.Manager, log *zap.Logger) *Pages {
	return &Pages{
		view:     renderer,
		sessions: sessions,
		log:      log,
	}
}

func (p *Pages) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, errs map[string]string, data any) {
	page := view.Page{
		Title:   title,
		Flashes: p.sessions.Flashes(w, r),
		Errors:  errs,
		Data:    data,
	}
	if principal, ok := utils.GetPrincipalFromContext(r.Context()); ok {
		page.Username = principal.Username
	}

	p.view.Render(w, status, name, page)
}

// NotFound renders the 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.Render(w, r, http.StatusNotFound, "404", "Not found", nil, nil)
}

// handleServiceError renders the page matching err. Validation errors are
// handled by each form handler before this is reached.
func (p *Pages) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		p.log.Warn(operation+" failed - not found", zap.Error(err), zap.String("path", r.URL.Path))
		p.NotFound(w, r)

	default:
		p.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		p.Render(w, r, http.StatusInternalServerError, "500", "Error", nil, nil)
	}
}
