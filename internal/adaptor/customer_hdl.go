package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service   usecase.CustomerService
	products  usecase.ProductService
	pages     *Pages
	maxUpload int64
	log       *zap.Logger
}

func NewCustomerHandler(
	service usecase.CustomerService,
	products usecase.ProductService,
	pages *Pages,
	maxUpload int64,
	log *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		service:   service,
		products:  products,
		pages:     pages,
		maxUpload: maxUpload,
		log:       log,
	}
}

type accountForm struct {
	Name          string
	Phone         string
	Email         string
	ProfilePicURL string
}

func accountFormFrom(c *response.CustomerResponse) accountForm {
	return accountForm{
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		ProfilePicURL: c.ProfilePicURL,
	}
}

// AccountSettings handles GET /account
func (h *CustomerHandler) AccountSettings(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	customer, err := h.service.GetAccount(r.Context(), principal.UserID)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get account")
		return
	}

	h.pages.Render(w, r, http.StatusOK, "account_settings", "Account settings", nil, accountFormFrom(customer))
}

// UpdateAccount handles POST /account (multipart, optional profile_pic)
func (h *CustomerHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	current, err := h.service.GetAccount(r.Context(), principal.UserID)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get account")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		msg := "Upload a valid image."
		if errors.As(err, &tooLarge) {
			msg = fmt.Sprintf("File is larger than %d MB.", h.maxUpload>>20)
		}
		h.pages.Render(w, r, http.StatusOK, "account_settings", "Account settings",
			map[string]string{"profile_pic": msg}, accountFormFrom(current))
		return
	}

	req := request.CustomerRequest{
		Name:  r.PostFormValue("name"),
		Phone: r.PostFormValue("phone"),
		Email: r.PostFormValue("email"),
	}

	file, header, err := r.FormFile("profile_pic")
	switch {
	case err == nil:
		defer file.Close()
		if header.Size > 0 {
			req.ProfilePic = &request.Upload{
				Filename: header.Filename,
				Size:     header.Size,
				Body:     file,
			}
		}
	case !errors.Is(err, http.ErrMissingFile):
		h.log.Warn("Failed to read profile picture", zap.Error(err))
	}

	customer, err := h.service.UpdateAccount(r.Context(), principal.UserID, &req)
	if err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			form := accountForm{
				Name:          req.Name,
				Phone:         req.Phone,
				Email:         req.Email,
				ProfilePicURL: current.ProfilePicURL,
			}
			h.pages.Render(w, r, http.StatusOK, "account_settings", "Account settings", ve.Fields, form)
			return
		}
		h.pages.handleServiceError(w, r, err, "update account")
		return
	}

	h.log.Info("Account settings saved", zap.String("customer_id", customer.ID))
	utils.Redirect(w, r, "/account")
}

type customerPage struct {
	Detail   *usecase.CustomerDetail
	Filter   request.OrderFilterRequest
	Products []response.ProductResponse
}

// Detail handles GET /customer/{id}?status=&product=&start_date=&end_date=
func (h *CustomerHandler) Detail(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := request.OrderFilterRequest{
		Status:    query.Get("status"),
		ProductID: query.Get("product"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	detail, err := h.service.GetCustomerDetail(r.Context(), chi.URLParam(r, "id"), &filter)
	if err != nil {
		h.pages.handleServiceError(w, r, err, "get customer")
		return
	}

	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.pages.handleServiceError(w, r, err, "list products")
		return
	}

	page := customerPage{
		Detail:   detail,
		Filter:   filter,
		Products: products,
	}
	h.pages.Render(w, r, http.StatusOK, "customer", detail.Customer.Name, detail.FilterErrors, page)
}
