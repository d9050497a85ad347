package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusOutForDelivery OrderStatus = "Out for delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	BaseNoDelete
	CustomerID uuid.UUID   `db:"customer_id"`
	ProductID  uuid.UUID   `db:"product_id"`
	Status     OrderStatus `db:"status"`
	Note       string      `db:"note"`
}

// OrderDetail is an order joined with the names it is displayed with.
type OrderDetail struct {
	Order
	CustomerName string `db:"customer_name"`
	ProductName  string `db:"product_name"`
}

// OrderFilter narrows a customer's order list. Zero values match everything.
// StartDate is inclusive, EndDate exclusive.
type OrderFilter struct {
	Status    OrderStatus
	ProductID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// OrderStatusCounts is the per-status breakdown shown on the dashboards.
type OrderStatusCounts struct {
	Total          int64
	Pending        int64
	OutForDelivery int64
	Delivered      int64
}
