package view

import (
	"fmt"

	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
)

// OrderFields backs the "order_fields" partial: one product/status/note
// input group, shared by the create and update forms.
type OrderFields struct {
	Products     []response.ProductResponse
	ProductField string
	StatusField  string
	NoteField    string
	Form         request.OrderRequest
	Errors       map[string]string
}

// NewOrderFields names the inputs after the form tags of
// request.OrderRequest. A non-negative row suffixes each name with "_<row>".
func NewOrderFields(products []response.ProductResponse, form request.OrderRequest, errs map[string]string, row int) OrderFields {
	name := func(field string) string {
		if row < 0 {
			return field
		}
		return fmt.Sprintf("%s_%d", field, row)
	}

	return OrderFields{
		Products:     products,
		ProductField: name("product"),
		StatusField:  name("status"),
		NoteField:    name("note"),
		Form:         form,
		Errors:       errs,
	}
}
