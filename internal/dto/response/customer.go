package response

import (
	"path"
	"time"

	"order-management/internal/data/entity"
)

// MediaURLPrefix is where uploaded files are served from.
const MediaURLPrefix = "/media/"

type CustomerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ProfilePicURL string    `json:"profile_pic_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
	}
	if customer.ProfilePic != nil && *customer.ProfilePic != "" {
		resp.ProfilePicURL = path.Join(MediaURLPrefix, *customer.ProfilePic)
	}
	return resp
}

// CustomerDetailResponse backs the admin view of one customer.
// OrdersCount is the unfiltered total.
type CustomerDetailResponse struct {
	Customer    CustomerResponse `json:"customer"`
	Orders      []OrderResponse  `json:"orders"`
	OrdersCount int64            `json:"orders_count"`
}
