package response

import "order-management/internal/data/entity"

// StatusSummary is the counter row shared by both dashboards.
type StatusSummary struct {
	TotalOrders          int64 `json:"total_orders"`
	TotalOrdersDelivered int64 `json:"total_orders_delivered"`
	TotalOrdersPending   int64 `json:"total_orders_pending"`
	TotalOutForDelivery  int64 `json:"total_out_for_delivery"`
}

func StatusSummaryFromCounts(c entity.OrderStatusCounts) StatusSummary {
	return StatusSummary{
		TotalOrders:          c.Total,
		TotalOrdersDelivered: c.Delivered,
		TotalOrdersPending:   c.Pending,
		TotalOutForDelivery:  c.OutForDelivery,
	}
}

type AdminDashboardResponse struct {
	StatusSummary
	TotalCustomers int64              `json:"total_customers"`
	Orders         []OrderResponse    `json:"orders"`
	Customers      []CustomerResponse `json:"customers"`
}

type CustomerDashboardResponse struct {
	StatusSummary
	Orders []OrderResponse `json:"orders"`
}
