package request

import (
	"order-management/internal/data/entity"
	"order-management/pkg/utils"

	"github.com/go-playground/validator/v10"
)

func init() {
	utils.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).Valid()
	})
}

// CreateOrderRows is how many blank rows the create-order form offers.
const CreateOrderRows = 5

type OrderRequest struct {
	ProductID string `form:"product" validate:"required,uuid"`
	Status    string `form:"status" validate:"required,order_status"`
	Note      string `form:"note" validate:"max=1000"`
}

// OrderRowRequest is one row of the create-order form. Row is the row's
// position in the form, used to key its errors.
type OrderRowRequest struct {
	OrderRequest
	Row int `form:"-" validate:"-"`
}

// Blank reports whether the row was left untouched and should be skipped.
func (r OrderRowRequest) Blank() bool {
	return r.ProductID == "" && r.Status == "" && r.Note == ""
}

type CreateOrdersRequest struct {
	Rows []OrderRowRequest
}

// OrderFilterRequest holds the customer page filter. Dates are YYYY-MM-DD.
type OrderFilterRequest struct {
	Status    string `form:"status" validate:"omitempty,order_status"`
	ProductID string `form:"product" validate:"omitempty,uuid"`
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
