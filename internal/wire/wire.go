package wire

import (
	"fmt"
	"net/http"

	"order-management/internal/adaptor"
	"order-management/internal/data/repository"
	"order-management/internal/usecase"
	"order-management/internal/view"
	"order-management/pkg/media"
	"order-management/pkg/middleware"
	"order-management/pkg/utils"
	"order-management/pkg/websession"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	store := media.NewStore(config.Media.Path)
	service := usecase.NewService(repo, config, store, logger)

	renderer, err := view.NewRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	sessions := websession.NewManager(config.Session)

	handler := adaptor.NewHandler(service, renderer, sessions, config, logger)
	router := setupRouter(handler, service, sessions, store.Root(), logger)

	return &App{
		Router:  router,
		Service: service,
	}, nil
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	sessions *websession.Manager,
	mediaRoot string,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Authenticate(sessions, service.Auth, logger))

	r.NotFound(handler.Pages.NotFound)

	// Apply routes
	wireAuth(r, handler.Auth)
	wireDashboard(r, handler.Dashboard, service.Role, logger)
	wireCustomer(r, handler.Customer, service.Role, logger)
	wireOrder(r, handler.Order, service.Role, logger)
	wireProduct(r, handler.Product, service.Role, logger)

	// Uploaded profile pictures
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot))))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseText(w, http.StatusOK, "OK")
	})

	return r
}
