package response

import (
	"time"

	"order-management/internal/data/entity"
)

type OrderResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	ProductID    string             `json:"product_id"`
	ProductName  string             `json:"product_name"`
	Status       entity.OrderStatus `json:"status"`
	Note         string             `json:"note"`
	CreatedAt    time.Time          `json:"created_at"`
}

func OrderToResponse(order *entity.OrderDetail) OrderResponse {
	return OrderResponse{
		ID:           order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		CustomerName: order.CustomerName,
		ProductID:    order.ProductID.String(),
		ProductName:  order.ProductName,
		Status:       order.Status,
		Note:         order.Note,
		CreatedAt:    order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.OrderDetail) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = OrderToResponse(order)
	}
	return resp
}
