package adaptor

import (
	"net/http"

	"order-management/internal/dto/request"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	pages   *Pages
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, pages *Pages, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		pages:   pages,
		log:     log,
	}
}

// List handles GET /products?page=&per_page=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	products, err := h.service.GetProducts(r.Context(), &req)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get products")
		return
	}

	h.pages.Render(w, r, http.StatusOK, "products", "Products", nil, products)
}
