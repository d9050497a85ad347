package adaptor

import (
	"fmt"
	"net/http"

	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/internal/usecase"
	"order-management/internal/view"
	"order-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// orderSuccessURL is where every successful order form lands.
const orderSuccessURL = "/"

type OrderHandler struct {
	service   usecase.OrderService
	customers usecase.CustomerService
	products  usecase.ProductService
	pages     *Pages
	log       *zap.Logger
}

func NewOrderHandler(
	service usecase.OrderService,
	customers usecase.CustomerService,
	products usecase.ProductService,
	pages *Pages,
	log *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		service:   service,
		customers: customers,
		products:  products,
		pages:     pages,
		log:       log,
	}
}

type orderFormPage struct {
	Customer *response.CustomerResponse
	Rows     []view.OrderFields
}

type orderUpdatePage struct {
	Order  *response.OrderResponse
	Fields view.OrderFields
}

// CreatePage handles GET /customer/{id}/create_order
func (h *OrderHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get customer")
		return
	}

	rows := make([]request.OrderRowRequest, request.CreateOrderRows)
	for i := range rows {
		rows[i].Row = i
	}
	h.renderCreate(w, r, customer, rows, nil)
}

// Create handles POST /customer/{id}/create_order. Either every filled row
// is stored or none is.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	customer, err := h.customers.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get customer")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.pages.Render(w, r, http.StatusBadRequest, "500", "Error", nil, nil)
		return
	}

	req := request.CreateOrdersRequest{Rows: make([]request.OrderRowRequest, request.CreateOrderRows)}
	for i := range req.Rows {
		req.Rows[i] = request.OrderRowRequest{
			OrderRequest: request.OrderRequest{
				ProductID: r.PostFormValue(fmt.Sprintf("product_%d", i)),
				Status:    r.PostFormValue(fmt.Sprintf("status_%d", i)),
				Note:      r.PostFormValue(fmt.Sprintf("note_%d", i)),
			},
			Row: i,
		}
	}

	if _, err := h.service.CreateOrders(r.Context(), customerID, &req); err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			h.renderCreate(w, r, customer, req.Rows, ve.Fields)
			return
		}
		h.pages.handleServiceError(w, r, err, "create orders")
		return
	}

	utils.Redirect(w, r, orderSuccessURL)
}

func (h *OrderHandler) renderCreate(w http.ResponseWriter, r *http.Request, customer *response.CustomerResponse, rows []request.OrderRowRequest, errs map[string]string) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.pages.handleServiceError(w, r, err, "list products")
		return
	}

	page := orderFormPage{Customer: customer, Rows: make([]view.OrderFields, len(rows))}
	for i, row := range rows {
		page.Rows[i] = view.NewOrderFields(products, row.OrderRequest, errs, row.Row)
	}
	h.pages.Render(w, r, http.StatusOK, "order_form", "Place orders", errs, page)
}

// UpdatePage handles GET /order/{id}/update
func (h *OrderHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get order")
		return
	}

	form := request.OrderRequest{
		ProductID: order.ProductID,
		Status:    string(order.Status),
		Note:      order.Note,
	}
	h.renderUpdate(w, r, order, form, nil)
}

// Update handles POST /order/{id}/update. An invalid form leaves the order
// as it was.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get order")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.pages.Render(w, r, http.StatusBadRequest, "500", "Error", nil, nil)
		return
	}

	req := request.OrderRequest{
		ProductID: r.PostFormValue("product"),
		Status:    r.PostFormValue("status"),
		Note:      r.PostFormValue("note"),
	}

	if _, err := h.service.UpdateOrder(r.Context(), orderID, &req); err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			h.renderUpdate(w, r, order, req, ve.Fields)
			return
		}
		h.pages.handleServiceError(w, r, err, "update order")
		return
	}

	utils.Redirect(w, r, orderSuccessURL)
}

func (h *OrderHandler) renderUpdate(w http.ResponseWriter, r *http.Request, order *response.OrderResponse, form request.OrderRequest, errs map[string]string) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.pages.handleServiceError(w, r, err, "list products")
		return
	}

	page := orderUpdatePage{
		Order:  order,
		Fields: view.NewOrderFields(products, form, errs, -1),
	}
	h.pages.Render(w, r, http.StatusOK, "order_update", "Update order", errs, page)
}

// DeletePage handles GET /order/{id}/delete (confirmation)
func (h *OrderHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get order")
		return
	}

	h.pages.Render(w, r, http.StatusOK, "delete", "Delete order", nil, order)
}

// Delete handles POST /order/{id}/delete
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.pages.handleServiceError(w, r, err, "delete order")
		return
	}

	utils.Redirect(w, r, orderSuccessURL)
}
